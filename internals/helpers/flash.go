package helper

import (
	"encoding/base64"
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

// Flash categories used by the layout
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
	FlashMessage = "message"
)

const (
	flashCookie = "flash"
	locFlashes  = "flashes"
)

type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// SetFlash queues a message for the next rendered page. Pending messages live
// in a cookie so they survive a redirect.
func SetFlash(c *fiber.Ctx, category, message string) {
	flashes := append(pendingFlashes(c), Flash{Category: category, Message: message})
	c.Locals(locFlashes, flashes)

	raw, err := sonic.Marshal(flashes)
	if err != nil {
		log.Printf("[WARN] flash encode: %v", err)
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// PopFlashes returns the queued messages and clears them.
func PopFlashes(c *fiber.Ctx) []Flash {
	flashes := pendingFlashes(c)
	c.Locals(locFlashes, []Flash{})
	if c.Cookies(flashCookie) != "" || len(flashes) > 0 {
		c.ClearCookie(flashCookie)
	}
	return flashes
}

func pendingFlashes(c *fiber.Ctx) []Flash {
	if v, ok := c.Locals(locFlashes).([]Flash); ok {
		return v
	}
	return decodeFlashes(c.Cookies(flashCookie))
}

func decodeFlashes(v string) []Flash {
	if v == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(v)
	if err != nil {
		return nil
	}
	var out []Flash
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// RedirectWithFlash is the usual ending of a form handler.
func RedirectWithFlash(c *fiber.Ctx, to, category, message string) error {
	SetFlash(c, category, message)
	return c.Redirect(to, fiber.StatusFound)
}

// MsgGenericError is flashed when a request fails on the storage side.
const MsgGenericError = "An error occurred. Please try again."

// FailWithFlash logs err and redirects with the generic error message.
func FailWithFlash(c *fiber.Ctx, to, op string, err error) error {
	log.Printf("[ERROR] %s: %v", op, err)
	return RedirectWithFlash(c, to, FlashError, MsgGenericError)
}
