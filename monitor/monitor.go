package monitor

import (
	"context"
	"os"
	"time"

	"admission-portal-api/config"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// RegisterStatusRoute exposes a JSON snapshot of the service dependencies:
// database ping, redis ping and whether the mailer is configured.
func RegisterStatusRoute(router *gin.Engine, mailerConfigured bool) {
	router.GET("/monitor/status", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbOK := false
		if config.DB != nil {
			if sqlDB, err := config.DB.DB(); err == nil {
				dbOK = sqlDB.PingContext(ctx) == nil
			}
		}

		redisOK := false
		if config.Cache != nil {
			redisOK = config.Cache.Ping(ctx).Err() == nil
		}

		c.JSON(200, gin.H{
			"status":   "ok",
			"uptime":   time.Since(startedAt).Round(time.Second).String(),
			"database": dbOK,
			"redis":    redisOK,
			"mailer":   mailerConfigured,
		})
	})
}

// RegisterMonitorPage serves a minimal HTML monitor over the status route
// and the log tail.
func RegisterMonitorPage(router *gin.Engine) {
	router.GET("/monitor", func(c *gin.Context) {
		c.Data(200, "text/html; charset=utf-8", []byte(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>Admission API Monitor</title>
  <style>
    body {
      background: #0f1420;
      color: #e0e0e0;
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
      padding: 20px;
    }
    .container { max-width: 900px; margin: 0 auto; }
    h1 { font-size: 1.8rem; margin-bottom: 1rem; }
    .card {
      background: rgba(255, 255, 255, 0.05);
      border: 1px solid rgba(255, 255, 255, 0.1);
      border-radius: 12px;
      padding: 1rem 1.5rem;
      margin-bottom: 1.5rem;
    }
    pre {
      max-height: 420px;
      overflow: auto;
      font-size: 0.85rem;
      white-space: pre-wrap;
    }
  </style>
</head>
<body>
  <div class="container">
    <h1>Admission Portal API Monitor</h1>
    <div class="card" id="status">Checking...</div>
    <div class="card"><pre id="logs">Loading logs...</pre></div>
  </div>
  <script>
    function fetchStatus() {
      fetch('/monitor/status')
        .then(res => res.json())
        .then(data => {
          document.getElementById('status').textContent =
            'Uptime ' + data.uptime +
            ' | DB ' + (data.database ? 'up' : 'down') +
            ' | Redis ' + (data.redis ? 'up' : 'down') +
            ' | Mailer ' + (data.mailer ? 'configured' : 'off');
        })
        .catch(() => {
          document.getElementById('status').textContent = 'Offline';
        });
    }
    function fetchLogs() {
      fetch('/logs?token=' + (new URLSearchParams(location.search).get('token') || ''))
        .then(res => res.text())
        .then(data => {
          const el = document.getElementById('logs');
          el.textContent = data;
          el.scrollTop = el.scrollHeight;
        });
    }
    fetchStatus();
    fetchLogs();
    setInterval(fetchStatus, 5000);
    setInterval(fetchLogs, 5000);
  </script>
</body>
</html>`))
	})
}

// RegisterLogsRoute serves the log file tail, gated by MONITOR_TOKEN.
func RegisterLogsRoute(router *gin.Engine) {
	router.GET("/logs", func(c *gin.Context) {
		token := os.Getenv("MONITOR_TOKEN")
		if token == "" || c.Query("token") != token {
			c.JSON(401, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		logData, err := os.ReadFile(config.LogFilePath())
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Unable to read log"})
			return
		}
		c.Data(200, "text/plain; charset=utf-8", logData)
	})
}
