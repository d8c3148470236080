package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	remedies := api.Group("/remedies")
	remedies.Get("", handler.ListRemedies)
	remedies.Get("/categories", handler.ListRemedyCategories)
	remedies.Get("/:id", handler.ProfileSession, handler.GetRemedy)

	api.Get("/conditions", handler.ListConditions)

	symptoms := api.Group("/symptoms")
	symptoms.Post("/check", handler.ProfileSession, handler.CheckSymptoms)
	symptoms.Post("/emergency", handler.CheckEmergency)

	profile := api.Group("/profile", handler.ProfileSession)
	profile.Get("", handler.GetProfile)
	profile.Patch("", handler.UpdateProfile)
	profile.Post("/favorites/:id", handler.AddFavorite)
	profile.Delete("/favorites/:id", handler.RemoveFavorite)
	profile.Post("/ingredients", handler.AddIngredient)
	profile.Delete("/ingredients/:name", handler.RemoveIngredient)
	profile.Get("/history", handler.ListHistory)
	profile.Post("/history", handler.AddHistoryRecord)
	profile.Get("/reminders", handler.ListReminders)
	profile.Post("/reminders", handler.CreateReminder)
	profile.Patch("/reminders/:id", handler.UpdateReminder)
	profile.Delete("/reminders/:id", handler.DeleteReminder)
	profile.Get("/achievements", handler.ListAchievements)
	profile.Post("/achievements", handler.GrantAchievement)
	profile.Get("/export", handler.ExportProfile)
	profile.Post("/clear", handler.ClearProfile)

	api.Post("/chat", handler.ProfileSession, handler.Chat)
}
