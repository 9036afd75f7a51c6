package web

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"hearth/internal/album"
	"hearth/internal/assistant"
	"hearth/internal/companion"
	"hearth/internal/model"
	"hearth/internal/router"
	"hearth/internal/scoreboard"
	"hearth/internal/state"
	"hearth/internal/validate"
)

func (s *Server) routes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	api := s.app.Group("/api")
	api.Get("/users", s.listUsers)
	api.Get("/session", s.getSession)
	api.Post("/session", s.selectUser)
	api.Delete("/session", s.logout)
	api.Post("/navigate", s.navigate)
	api.Post("/vault/unlock", s.unlockVault)
	api.Get("/screen", s.showScreen)
	api.Get("/data", s.getData)
	api.Post("/chat", s.sendChatMessage)
	api.Post("/memories", s.addMemory)
	api.Get("/digest", s.weeklyDigest)
	api.Post("/meal-plan", s.mealPlan)
	api.Post("/ask", s.askQuestion)
	api.Get("/topics", s.listTopics)
	api.Get("/score", s.liveScore)
	api.Post("/helper", s.askHelper)
	api.Get("/helper", s.helperThread)
	api.Get("/validate", s.validate)
}

type sessionResponse struct {
	User          *model.User `json:"user,omitempty"`
	Screen        string      `json:"screen"`
	VaultUnlocked bool        `json:"vaultUnlocked"`
}

func newSessionResponse(session state.Session) sessionResponse {
	return sessionResponse{
		User:          session.CurrentUser,
		Screen:        string(session.Screen),
		VaultUnlocked: session.VaultUnlocked,
	}
}

func (s *Server) listUsers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"users": s.state.Data().Users})
}

func (s *Server) getSession(c *fiber.Ctx) error {
	return c.JSON(newSessionResponse(s.state.Session()))
}

func (s *Server) selectUser(c *fiber.Ctx) error {
	var body struct {
		UserID string `json:"userId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if body.UserID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "userId is required")
	}
	user, ok := s.state.Data().User(body.UserID)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}
	s.state.SelectUser(user)
	return c.JSON(newSessionResponse(s.state.Session()))
}

func (s *Server) logout(c *fiber.Ctx) error {
	s.state.Logout()
	return c.JSON(newSessionResponse(s.state.Session()))
}

func (s *Server) navigate(c *fiber.Ctx) error {
	var body struct {
		Screen string `json:"screen"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	screen, err := model.ParseScreen(body.Screen)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	s.state.Navigate(screen)
	return c.JSON(newSessionResponse(s.state.Session()))
}

func (s *Server) unlockVault(c *fiber.Ctx) error {
	var body struct {
		Passphrase string `json:"passphrase"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if !s.state.UnlockVault(body.Passphrase) {
		return fiber.NewError(fiber.StatusForbidden, "incorrect passphrase")
	}
	return c.JSON(newSessionResponse(s.state.Session()))
}

func (s *Server) showScreen(c *fiber.Ctx) error {
	order, err := model.ParseMemoryOrder(c.Query("order"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	view := router.Route(s.state.Session(), s.state.Data(), router.WithMemoryOrder(order))
	return c.JSON(fiber.Map{
		"screen": view.Screen(),
		"view":   view,
	})
}

func (s *Server) getData(c *fiber.Ctx) error {
	return c.JSON(s.state.Data())
}

func (s *Server) sendChatMessage(c *fiber.Ctx) error {
	var body struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	msg, err := s.state.SendChatMessage(c.UserContext(), body.Content)
	if err != nil {
		return httpError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// addMemory takes a multipart form with an "image" file and "note" and
// "date" fields.
func (s *Server) addMemory(c *fiber.Ctx) error {
	session := s.state.Session()
	if session.CurrentUser == nil {
		return httpError(state.ErrNoUser)
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "image is required")
	}
	if fh.Size > album.MaxImageBytes {
		return httpError(album.ErrImageTooLarge)
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	image, err := io.ReadAll(io.LimitReader(f, album.MaxImageBytes+1))
	if err != nil {
		return err
	}

	mimeType := fh.Header.Get(fiber.HeaderContentType)
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = ""
	}

	visit := s.state.Visit()
	memory, err := s.album.Add(c.UserContext(), album.Request{
		Image:        image,
		MimeType:     mimeType,
		Prompt:       c.FormValue("note"),
		Date:         c.FormValue("date"),
		UploadedByID: session.CurrentUser.ID,
	}, s.state.Alive(visit))
	if err != nil {
		return httpError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(memory)
}

func (s *Server) weeklyDigest(c *fiber.Ctx) error {
	digest := s.assistant.WeeklyDigest(c.UserContext(), assistant.NewDigestContext(s.state.Data()))
	return c.JSON(fiber.Map{"digest": digest})
}

func (s *Server) mealPlan(c *fiber.Ctx) error {
	var body struct {
		Preference string `json:"preference"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
	}
	days := s.assistant.MealPlan(c.UserContext(), body.Preference)
	if days == nil {
		days = []assistant.MealPlanDay{}
	}
	return c.JSON(fiber.Map{"days": days})
}

func (s *Server) askQuestion(c *fiber.Ctx) error {
	var body struct {
		Query string `json:"query"`
		Topic string `json:"topic"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	query, ok := assistant.ResolveQuery(body.Query, body.Topic)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "query or a known topic is required")
	}
	return c.JSON(s.assistant.GroundedAnswer(c.UserContext(), query))
}

func (s *Server) listTopics(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"topics": assistant.Topics()})
}

func (s *Server) liveScore(c *fiber.Ctx) error {
	reading := s.scores.Reading()
	if reading.CheckedAt.IsZero() {
		reading = s.scores.Poll(c.UserContext())
	}
	out := fiber.Map{"reading": reading}
	if countdown, ok := scoreboard.NextCountdown(s.state.Data().HockeySchedule, reading.CheckedAt); ok {
		out["countdown"] = countdown
	}
	return c.JSON(out)
}

const (
	// streamReset tells the client to discard the text streamed so far; the
	// replacement follows it.
	streamReset = "\n[reset]\n"
	// streamAbandoned ends a reply dropped because the view changed.
	streamAbandoned = "\n[abandoned]\n"
)

// askHelper streams the helper's reply as plain text. A busy helper or a
// blank message is rejected before the response starts.
func (s *Server) askHelper(c *fiber.Ctx) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	pending, err := s.helper.Begin(body.Message)
	if err != nil {
		return httpError(err)
	}

	ctx := c.UserContext()
	alive := s.state.Alive(s.state.Visit())
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		flushed := false
		reply, err := pending.Stream(ctx, alive, func(chunk string) {
			w.WriteString(chunk)
			w.Flush()
			flushed = true
		})
		switch {
		case errors.Is(err, companion.ErrStale):
			s.logger.Info("helper reply abandoned", zap.Error(err))
			w.WriteString(streamAbandoned)
		case err != nil:
			s.logger.Warn("helper reply not delivered", zap.Error(err))
		case pending.Failed():
			if flushed {
				w.WriteString(streamReset)
			}
			w.WriteString(reply)
		}
		w.Flush()
	})
	return nil
}

func (s *Server) helperThread(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"turns": s.helper.Turns()})
}

func (s *Server) validate(c *fiber.Ctx) error {
	report := validate.Run(s.state.Data())
	return c.JSON(fiber.Map{
		"issues": report.Issues,
		"errors": len(report.Errors()),
	})
}

func httpError(err error) error {
	switch {
	case errors.Is(err, state.ErrNoUser):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, album.ErrImageTooLarge):
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, state.ErrEmptyMessage),
		errors.Is(err, companion.ErrEmpty),
		errors.Is(err, album.ErrMissingFields),
		errors.Is(err, album.ErrNotImage):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, companion.ErrBusy),
		errors.Is(err, album.ErrStale),
		errors.Is(err, companion.ErrStale):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}
	return err
}
