package static

import (
	"github.com/gofiber/fiber/v2"
)

const (
	CacheControl = "no-cache, no-store, must-revalidate"
	Pragma       = "no-cache"
	Expires      = "0"
)

// NoCache marks the response as immediately stale for clients and
// intermediaries. It overwrites whatever the file handler set.
func NoCache(c *fiber.Ctx) {
	c.Set(fiber.HeaderCacheControl, CacheControl)
	c.Set(fiber.HeaderPragma, Pragma)
	c.Set(fiber.HeaderExpires, Expires)
}
