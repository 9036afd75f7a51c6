package mcp

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"hearth/internal/album"
	"hearth/internal/assistant"
	"hearth/internal/model"
	"hearth/internal/router"
	"hearth/internal/scoreboard"
	"hearth/internal/state"
	"hearth/internal/validate"
)

type ListUsersInput struct{}

type SelectUserInput struct {
	UserID string `json:"user_id" jsonschema:"id of the family member to act as"`
}

type LogoutInput struct{}

type NavigateInput struct {
	Screen string `json:"screen" jsonschema:"screen slug or display name"`
}

type UnlockVaultInput struct {
	Passphrase string `json:"passphrase" jsonschema:"family vault passphrase"`
}

type ShowScreenInput struct {
	Order string `json:"order,omitempty" jsonschema:"memories order: newest or oldest"`
}

type SendChatMessageInput struct {
	Content string `json:"content" jsonschema:"message text"`
}

type AddMemoryInput struct {
	ImageBase64 string `json:"image_base64" jsonschema:"base64-encoded photo, at most 4MB decoded"`
	MimeType    string `json:"mime_type,omitempty" jsonschema:"image media type, detected when empty"`
	Note        string `json:"note" jsonschema:"what the photo shows"`
	Date        string `json:"date" jsonschema:"date the photo was taken"`
}

type WeeklyDigestInput struct{}

type MealPlanInput struct {
	Preference string `json:"preference,omitempty" jsonschema:"dietary preference or theme"`
}

type AskQuestionInput struct {
	Query string `json:"query,omitempty" jsonschema:"question to answer with web sources"`
	Topic string `json:"topic,omitempty" jsonschema:"preset used when query is empty: dementia, communication or cohabitation"`
}

type LiveScoreInput struct{}

type AskHelperInput struct {
	Message string `json:"message" jsonschema:"message for the in-app helper"`
}

type ValidateInput struct{}

type UsersOutput struct {
	Users []model.User `json:"users"`
}

type SessionOutput struct {
	User          *model.User `json:"user,omitempty"`
	Screen        string      `json:"screen"`
	VaultUnlocked bool        `json:"vault_unlocked"`
}

type UnlockVaultOutput struct {
	Unlocked bool `json:"unlocked"`
}

type ShowScreenOutput struct {
	Screen string `json:"screen"`
	View   any    `json:"view"`
}

type ChatMessageOutput struct {
	Message model.ChatMessage `json:"message"`
}

type MemoryOutput struct {
	Memory model.MemoryItem `json:"memory"`
}

type DigestOutput struct {
	Digest string `json:"digest"`
}

type MealPlanOutput struct {
	Days []assistant.MealPlanDay `json:"days"`
}

type LiveScoreOutput struct {
	Reading   scoreboard.Reading    `json:"reading"`
	Countdown *scoreboard.Countdown `json:"countdown,omitempty"`
}

type AskHelperOutput struct {
	Reply string           `json:"reply"`
	Turns []assistant.Turn `json:"turns"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_users",
		Description: "List the family members who can log in",
	}, s.handleListUsers)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "select_user",
		Description: "Log in as a family member",
	}, s.handleSelectUser)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "logout",
		Description: "Log out and return to the dashboard",
	}, s.handleLogout)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "navigate",
		Description: "Switch the active screen",
	}, s.handleNavigate)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "unlock_vault",
		Description: "Unlock the shared vault screen",
	}, s.handleUnlockVault)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "show_screen",
		Description: "Return the data shown on the active screen",
	}, s.handleShowScreen)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "send_chat_message",
		Description: "Post to the family chat as the current user",
	}, s.handleSendChatMessage)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "add_memory",
		Description: "Add a photo memory with a generated story",
	}, s.handleAddMemory)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "weekly_digest",
		Description: "Write the weekly family update",
	}, s.handleWeeklyDigest)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "meal_plan",
		Description: "Suggest a three-day meal plan",
	}, s.handleMealPlan)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "ask_question",
		Description: "Answer a question using web search, or one of the preset caregiving topics",
	}, s.handleAskQuestion)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "live_score",
		Description: "Check the hockey schedule and the score of a game in progress",
	}, s.handleLiveScore)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "ask_helper",
		Description: "Talk to the in-app helper",
	}, s.handleAskHelper)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "validate_data",
		Description: "Report integrity problems in the household data",
	}, s.handleValidate)
}

func (s *Server) handleListUsers(ctx context.Context, req *sdk.CallToolRequest, input ListUsersInput) (*sdk.CallToolResult, UsersOutput, error) {
	users := append([]model.User{}, s.app.Data().Users...)
	return nil, UsersOutput{Users: users}, nil
}

func (s *Server) handleSelectUser(ctx context.Context, req *sdk.CallToolRequest, input SelectUserInput) (*sdk.CallToolResult, SessionOutput, error) {
	if input.UserID == "" {
		return nil, SessionOutput{}, fmt.Errorf("user_id is required")
	}
	user, ok := s.app.Data().User(input.UserID)
	if !ok {
		return nil, SessionOutput{}, fmt.Errorf("user %q not found", input.UserID)
	}
	s.app.SelectUser(user)
	return nil, sessionOutput(s.app.Session()), nil
}

func (s *Server) handleLogout(ctx context.Context, req *sdk.CallToolRequest, input LogoutInput) (*sdk.CallToolResult, SessionOutput, error) {
	s.app.Logout()
	return nil, sessionOutput(s.app.Session()), nil
}

func (s *Server) handleNavigate(ctx context.Context, req *sdk.CallToolRequest, input NavigateInput) (*sdk.CallToolResult, SessionOutput, error) {
	screen, err := model.ParseScreen(input.Screen)
	if err != nil {
		return nil, SessionOutput{}, err
	}
	s.app.Navigate(screen)
	return nil, sessionOutput(s.app.Session()), nil
}

func (s *Server) handleUnlockVault(ctx context.Context, req *sdk.CallToolRequest, input UnlockVaultInput) (*sdk.CallToolResult, UnlockVaultOutput, error) {
	return nil, UnlockVaultOutput{Unlocked: s.app.UnlockVault(input.Passphrase)}, nil
}

func (s *Server) handleShowScreen(ctx context.Context, req *sdk.CallToolRequest, input ShowScreenInput) (*sdk.CallToolResult, ShowScreenOutput, error) {
	order, err := model.ParseMemoryOrder(input.Order)
	if err != nil {
		return nil, ShowScreenOutput{}, err
	}
	view := router.Route(s.app.Session(), s.app.Data(), router.WithMemoryOrder(order))
	return nil, ShowScreenOutput{Screen: string(view.Screen()), View: view}, nil
}

func (s *Server) handleSendChatMessage(ctx context.Context, req *sdk.CallToolRequest, input SendChatMessageInput) (*sdk.CallToolResult, ChatMessageOutput, error) {
	msg, err := s.app.SendChatMessage(ctx, input.Content)
	if err != nil {
		return nil, ChatMessageOutput{}, err
	}
	return nil, ChatMessageOutput{Message: msg}, nil
}

func (s *Server) handleAddMemory(ctx context.Context, req *sdk.CallToolRequest, input AddMemoryInput) (*sdk.CallToolResult, MemoryOutput, error) {
	session := s.app.Session()
	if session.CurrentUser == nil {
		return nil, MemoryOutput{}, state.ErrNoUser
	}
	image, err := base64.StdEncoding.DecodeString(strings.TrimSpace(input.ImageBase64))
	if err != nil {
		return nil, MemoryOutput{}, fmt.Errorf("decoding image: %w", err)
	}

	visit := s.app.Visit()
	memory, err := s.album.Add(ctx, album.Request{
		Image:        image,
		MimeType:     input.MimeType,
		Prompt:       input.Note,
		Date:         input.Date,
		UploadedByID: session.CurrentUser.ID,
	}, s.app.Alive(visit))
	if err != nil {
		return nil, MemoryOutput{}, err
	}
	return nil, MemoryOutput{Memory: memory}, nil
}

func (s *Server) handleWeeklyDigest(ctx context.Context, req *sdk.CallToolRequest, input WeeklyDigestInput) (*sdk.CallToolResult, DigestOutput, error) {
	digest := s.assistant.WeeklyDigest(ctx, assistant.NewDigestContext(s.app.Data()))
	return nil, DigestOutput{Digest: digest}, nil
}

func (s *Server) handleMealPlan(ctx context.Context, req *sdk.CallToolRequest, input MealPlanInput) (*sdk.CallToolResult, MealPlanOutput, error) {
	days := s.assistant.MealPlan(ctx, input.Preference)
	if days == nil {
		days = []assistant.MealPlanDay{}
	}
	return nil, MealPlanOutput{Days: days}, nil
}

func (s *Server) handleAskQuestion(ctx context.Context, req *sdk.CallToolRequest, input AskQuestionInput) (*sdk.CallToolResult, assistant.GroundedAnswer, error) {
	query, ok := assistant.ResolveQuery(input.Query, input.Topic)
	if !ok {
		return nil, assistant.GroundedAnswer{}, fmt.Errorf("query or a known topic is required")
	}
	answer := s.assistant.GroundedAnswer(ctx, query)
	if answer.Sources == nil {
		answer.Sources = []assistant.Source{}
	}
	return nil, answer, nil
}

func (s *Server) handleLiveScore(ctx context.Context, req *sdk.CallToolRequest, input LiveScoreInput) (*sdk.CallToolResult, LiveScoreOutput, error) {
	reading := s.scores.Poll(ctx)
	out := LiveScoreOutput{Reading: reading}
	if countdown, ok := scoreboard.NextCountdown(s.app.Data().HockeySchedule, reading.CheckedAt); ok {
		out.Countdown = &countdown
	}
	return nil, out, nil
}

func (s *Server) handleAskHelper(ctx context.Context, req *sdk.CallToolRequest, input AskHelperInput) (*sdk.CallToolResult, AskHelperOutput, error) {
	visit := s.app.Visit()
	reply, err := s.helper.Ask(ctx, input.Message, s.app.Alive(visit), nil)
	if err != nil {
		return nil, AskHelperOutput{}, err
	}
	return nil, AskHelperOutput{Reply: reply, Turns: s.helper.Turns()}, nil
}

func (s *Server) handleValidate(ctx context.Context, req *sdk.CallToolRequest, input ValidateInput) (*sdk.CallToolResult, validate.Report, error) {
	report := validate.Run(s.app.Data())
	if report.Issues == nil {
		report.Issues = []validate.Issue{}
	}
	return nil, *report, nil
}

func sessionOutput(session state.Session) SessionOutput {
	return SessionOutput{
		User:          session.CurrentUser,
		Screen:        string(session.Screen),
		VaultUnlocked: session.VaultUnlocked,
	}
}
