package websocket

import (
	"log/slog"
	"net/url"
	"slices"

	ws "github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/portfolio-service/internal/platform/logging"
)

// Handler upgrades the request and runs it as a hub client until the page
// disconnects. allowedOrigins uses the CORS list; "*" disables the check.
func Handler(hub *Hub, allowedOrigins []string) gin.HandlerFunc {
	opts := &ws.AcceptOptions{}

	if slices.Contains(allowedOrigins, "*") {
		opts.InsecureSkipVerify = true
	} else {
		opts.OriginPatterns = originHosts(allowedOrigins)
	}

	return func(c *gin.Context) {
		conn, err := ws.Accept(c.Writer, c.Request, opts)
		if err != nil {
			logging.FromContext(c.Request.Context()).WarnContext(c.Request.Context(), "websocket accept failed",
				slog.Any("error", err),
			)

			return
		}

		NewClient(hub, conn).Run(c.Request.Context())
	}
}

// originHosts reduces "https://host:port" origins to the host patterns the
// websocket library matches against.
func originHosts(origins []string) []string {
	hosts := make([]string, 0, len(origins))

	for _, o := range origins {
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			hosts = append(hosts, u.Host)
			continue
		}

		hosts = append(hosts, o)
	}

	return hosts
}
