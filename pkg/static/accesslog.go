package static

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

const AccessTimeFormat = "02/Jan/2006 15:04:05"

// AccessLog formats the access-log line for a finished request:
//
//	<client-address> - - [<date-time>] "<method> <uri> <proto>" <status> -
func AccessLog(c *fiber.Ctx, t time.Time) string {
	request := fmt.Sprintf("%s %s %s", c.Method(), c.OriginalURL(), c.Request().Header.Protocol())

	return formatAccessLine(c.IP(), t, request, c.Response().StatusCode())
}

func formatAccessLine(addr string, t time.Time, request string, status int) string {
	return fmt.Sprintf("%s - - [%s] \"%s\" %d -\n", addr, t.Format(AccessTimeFormat), request, status)
}
