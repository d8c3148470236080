package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/remedywhisper/internal/security"
	"github.com/terraincognita07/remedywhisper/internal/services"
	"go.uber.org/zap"
)

const (
	profileCookieName = "remedy_profile"
	contextProfileKey = "profile_id"
	contextStoreKey   = "profile_store"
)

type Handler struct {
	directory    *services.ProfileDirectory
	chat         *services.ChatService
	sessions     *security.SessionSigner
	location     *time.Location
	cookieSecure bool
	logger       *zap.Logger
	now          func() time.Time
}

type Dependencies struct {
	Directory    *services.ProfileDirectory
	Chat         *services.ChatService
	Sessions     *security.SessionSigner
	Location     *time.Location
	CookieSecure bool
	Logger       *zap.Logger
}

func NewHandler(deps Dependencies) (*Handler, error) {
	if deps.Directory == nil {
		return nil, errors.New("profile directory is required")
	}
	if deps.Sessions == nil {
		return nil, errors.New("session signer is required")
	}
	if deps.Chat == nil {
		deps.Chat = services.NewChatService(nil, 0, deps.Logger)
	}
	if deps.Location == nil {
		deps.Location = time.UTC
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &Handler{
		directory:    deps.Directory,
		chat:         deps.Chat,
		sessions:     deps.Sessions,
		location:     deps.Location,
		cookieSecure: deps.CookieSecure,
		logger:       deps.Logger,
		now:          time.Now,
	}, nil
}
