package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/remedywhisper/internal/security"
	"go.uber.org/zap"
)

// ProfileSession resolves the caller's profile from the session cookie,
// minting a new anonymous profile when the cookie is missing or invalid.
func (handler *Handler) ProfileSession(c *fiber.Ctx) error {
	now := handler.now()

	profileID, err := handler.sessions.Parse(c.Cookies(profileCookieName), now)
	if err != nil {
		profileID, err = security.NewProfileID()
		if err != nil {
			handler.logger.Error("generate profile id failed", zap.Error(err))
			return apiError(c, fiber.StatusInternalServerError, "failed to start session")
		}
		if err := handler.setProfileCookie(c, profileID, now); err != nil {
			handler.logger.Error("issue profile session failed", zap.Error(err))
			return apiError(c, fiber.StatusInternalServerError, "failed to start session")
		}
	}

	store, err := handler.directory.Open(profileID)
	if err != nil {
		handler.logger.Error("open profile failed", zap.String("profile_id", profileID), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	c.Locals(contextProfileKey, profileID)
	c.Locals(contextStoreKey, store)
	return c.Next()
}

func (handler *Handler) setProfileCookie(c *fiber.Ctx, profileID string, now time.Time) error {
	token, err := handler.sessions.Issue(profileID, now)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     profileCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  now.Add(handler.sessions.TTL()),
	})
	return nil
}
