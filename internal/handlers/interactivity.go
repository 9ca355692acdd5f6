package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/devingeorge/global-sales-insights/internal/blocks"
	"github.com/devingeorge/global-sales-insights/internal/models"
	"github.com/devingeorge/global-sales-insights/internal/services"
	"github.com/devingeorge/global-sales-insights/internal/slack"
	"github.com/devingeorge/global-sales-insights/internal/store"
)

const requestTimeout = 30 * time.Second

// briefBuilder is the slice of the brief service this handler needs
type briefBuilder interface {
	Build(ctx context.Context, req *models.BriefRequest) (*models.BriefContent, error)
}

// InteractivityHandler handles block actions and view submissions. It is
// the outermost request boundary: whatever escapes the pipeline is turned
// into a user-visible DM here, and a single failed request never takes the
// process down.
type InteractivityHandler struct {
	client   *slack.Client
	prefs    *store.PreferenceStore
	canvases *services.CanvasService
	briefs   briefBuilder
	delivery *services.DeliveryService
	home     *services.HomeService

	defaultSource models.DataSource
}

// NewInteractivityHandler creates the interactivity handler
func NewInteractivityHandler(
	client *slack.Client,
	prefs *store.PreferenceStore,
	canvases *services.CanvasService,
	briefs briefBuilder,
	delivery *services.DeliveryService,
	home *services.HomeService,
	defaultSource models.DataSource,
) *InteractivityHandler {
	return &InteractivityHandler{
		client:        client,
		prefs:         prefs,
		canvases:      canvases,
		briefs:        briefs,
		delivery:      delivery,
		home:          home,
		defaultSource: defaultSource,
	}
}

// Handle dispatches an interactivity callback.
// POST /slack/interactivity
func (h *InteractivityHandler) Handle(c *fiber.Ctx) error {
	payload, err := slack.ParseInteractionPayload(c.FormValue("payload"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	switch payload.Type {
	case "block_actions":
		return h.handleBlockActions(c, payload)
	case "view_submission":
		return h.handleViewSubmission(c, payload)
	}
	return c.SendStatus(fiber.StatusOK)
}

// background runs fn after the ack, with a bounded context, a correlation
// id in every log line, and a recover so one bad request cannot crash the
// process.
func (h *InteractivityHandler) background(userID, what string, fn func(ctx context.Context, reqID string)) {
	reqID := uuid.NewString()[:8]
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("❌ [INTERACT:%s] Panic during %s: %v", reqID, what, r)
				h.apologize(userID)
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		fn(ctx, reqID)
	}()
}

// apologize sends the generic failure DM; best effort
func (h *InteractivityHandler) apologize(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	if err := h.client.PostMessage(ctx, userID, "Something went wrong creating your brief. Please try again.", nil); err != nil {
		log.Printf("❌ [INTERACT] Failed to send apology to %s: %v", userID, err)
	}
}

func (h *InteractivityHandler) handleBlockActions(c *fiber.Ctx, payload *slack.InteractionPayload) error {
	if len(payload.Actions) == 0 {
		return c.SendStatus(fiber.StatusOK)
	}
	action := payload.Actions[0]
	userID := payload.User.ID

	switch action.ActionID {
	case blocks.ActionExecutiveBrief:
		triggerID := payload.TriggerID
		h.background(userID, "open template modal", func(ctx context.Context, reqID string) {
			pref := h.prefs.Get(userID)
			if err := h.client.OpenView(ctx, triggerID, blocks.TemplateModal(pref)); err != nil {
				log.Printf("❌ [INTERACT:%s] Failed to open template modal: %v", reqID, err)
			}
		})

	case blocks.ActionSettings:
		triggerID := payload.TriggerID
		h.background(userID, "open settings modal", func(ctx context.Context, reqID string) {
			if err := h.client.OpenView(ctx, triggerID, h.settingsView(ctx, userID, "")); err != nil {
				log.Printf("❌ [INTERACT:%s] Failed to open settings modal: %v", reqID, err)
			}
		})

	case blocks.ActionHomeViewAs:
		selected := action.SelectedUser
		h.background(userID, "update view-as persona", func(ctx context.Context, reqID string) {
			if selected != "" {
				h.prefs.Update(userID, models.PreferencePatch{ViewAsUserID: &selected})
			}
			if err := h.home.Publish(ctx, userID); err != nil {
				log.Printf("❌ [INTERACT:%s] Failed to republish App Home: %v", reqID, err)
			}
		})

	case blocks.ActionSettingsReset:
		viewID, hash := payload.View.ID, payload.View.Hash
		h.background(userID, "reset settings", func(ctx context.Context, reqID string) {
			h.prefs.Reset(userID)
			log.Printf("🔄 [INTERACT:%s] Reset preferences for %s", reqID, userID)
			if err := h.client.UpdateView(ctx, viewID, hash, h.settingsView(ctx, userID, "Settings reset to defaults.")); err != nil {
				log.Printf("❌ [INTERACT:%s] Failed to update settings modal: %v", reqID, err)
			}
		})

	case blocks.ActionSettingsClear:
		viewID, hash := payload.View.ID, payload.View.Hash
		h.background(userID, "clear messages tab", func(ctx context.Context, reqID string) {
			status := "No Global Sales Insights messages were found to remove."
			deleted, err := h.delivery.ClearMessages(ctx, userID)
			if err != nil {
				log.Printf("⚠️  [INTERACT:%s] Failed to clear messages tab: %v", reqID, err)
				status = "Unable to clear the Messages tab. Please try again."
			} else if deleted > 0 {
				plural := "s"
				if deleted == 1 {
					plural = ""
				}
				status = fmt.Sprintf("Removed %d message%s from your Messages tab.", deleted, plural)
			}
			if err := h.client.UpdateView(ctx, viewID, hash, h.settingsView(ctx, userID, status)); err != nil {
				log.Printf("❌ [INTERACT:%s] Failed to update settings modal: %v", reqID, err)
			}
		})

	case blocks.ActionAccountInsights, blocks.ActionDeckAutomation, blocks.ActionReleaseNotes:
		h.background(userID, "coming-soon reply", func(ctx context.Context, reqID string) {
			msg := "Thanks for your interest! This module is coming soon in the Global Sales Insights demo."
			if err := h.client.PostMessage(ctx, userID, msg, nil); err != nil {
				log.Printf("❌ [INTERACT:%s] Failed to send coming-soon reply: %v", reqID, err)
			}
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

// settingsView assembles the settings modal from the user's current
// preferences. A canvas listing failure degrades to zero options; the modal
// still opens.
func (h *InteractivityHandler) settingsView(ctx context.Context, userID, status string) map[string]any {
	pref := h.prefs.Get(userID)
	canvases, err := h.canvases.List(ctx)
	if err != nil {
		canvases = nil
	}
	return blocks.SettingsView(blocks.SettingsViewArgs{
		SelectedSource:      pref.DataSource,
		SelectedCanvasID:    pref.SelectedCanvasID,
		SelectedCanvasTitle: pref.SelectedCanvasTitle,
		Canvases:            canvases,
		StatusMessage:       status,
	})
}

func (h *InteractivityHandler) handleViewSubmission(c *fiber.Ctx, payload *slack.InteractionPayload) error {
	switch payload.View.CallbackID {
	case blocks.CallbackSettings:
		return h.handleSettingsSubmission(c, payload)
	case blocks.CallbackBriefTemplate:
		return h.handleTemplateSubmission(c, payload)
	case blocks.CallbackBriefInputs:
		return h.handleBriefSubmission(c, payload)
	}
	return c.SendStatus(fiber.StatusOK)
}

// fieldErrors is the view_submission ack that pins messages to inputs
func fieldErrors(c *fiber.Ctx, fieldErr *services.FieldError) error {
	return c.JSON(fiber.Map{
		"response_action": "errors",
		"errors":          map[string]string{fieldErr.BlockID: fieldErr.Message},
	})
}

func (h *InteractivityHandler) handleSettingsSubmission(c *fiber.Ctx, payload *slack.InteractionPayload) error {
	submission, fieldErr := services.ParseSettingsSubmission(&payload.View)
	if fieldErr != nil {
		return fieldErrors(c, fieldErr)
	}

	userID := payload.User.ID
	h.background(userID, "apply settings", func(ctx context.Context, reqID string) {
		canvasTitle := submission.CanvasTitle
		if submission.CanvasID != "" && canvasTitle == "" {
			if meta, err := h.canvases.GetByID(ctx, submission.CanvasID); err == nil && meta != nil {
				canvasTitle = meta.Title
			}
		}
		h.prefs.Update(userID, models.PreferencePatch{
			DataSource:          &submission.DataSource,
			SelectedCanvasID:    &submission.CanvasID,
			SelectedCanvasTitle: &canvasTitle,
		})
		log.Printf("⚙️  [INTERACT:%s] Saved settings for %s (source: %s)", reqID, userID, submission.DataSource)
		if err := h.home.Publish(ctx, userID); err != nil {
			log.Printf("❌ [INTERACT:%s] Failed to republish App Home: %v", reqID, err)
		}
	})
	return c.SendStatus(fiber.StatusOK)
}

// handleTemplateSubmission advances the two-step brief flow by swapping the
// template modal for the inputs modal in the submission ack.
func (h *InteractivityHandler) handleTemplateSubmission(c *fiber.Ctx, payload *slack.InteractionPayload) error {
	meta := models.DecodeViewMetadata(payload.View.PrivateMetadata)

	source, ok := models.ParseDataSource(meta.DataSource)
	if !ok {
		source = h.defaultSource
	}

	templateID := services.DefaultTemplateID
	if source == models.DataSourceCanvas {
		templateID = "prebuilt_canvas"
	} else if val, ok := payload.View.State.Input(blocks.BlockTemplate, blocks.ActionTemplate); ok && val.SelectedOption != nil {
		templateID = val.SelectedOption.Value
	}

	next := blocks.InputsModal(models.ViewMetadata{
		DataSource:   string(source),
		TemplateID:   templateID,
		ViewAsUserID: meta.ViewAsUserID,
	})
	return c.JSON(fiber.Map{
		"response_action": "update",
		"view":            next,
	})
}

func (h *InteractivityHandler) handleBriefSubmission(c *fiber.Ctx, payload *slack.InteractionPayload) error {
	req, fieldErr := services.ParseBriefSubmission(&payload.View, payload.User.ID, h.defaultSource)
	if fieldErr != nil {
		return fieldErrors(c, fieldErr)
	}

	userID := payload.User.ID
	h.background(userID, "brief request", func(ctx context.Context, reqID string) {
		h.processBriefRequest(ctx, reqID, userID, req)
	})
	return c.SendStatus(fiber.StatusOK)
}

// processBriefRequest runs the assembly pipeline after the modal ack and
// converts every failure into a user-visible DM.
func (h *InteractivityHandler) processBriefRequest(ctx context.Context, reqID, userID string, req *models.BriefRequest) {
	// Persona stickiness: every brief request updates the preference,
	// whatever the content source.
	if req.PersonaUserID != "" {
		h.prefs.Update(userID, models.PreferencePatch{ViewAsUserID: &req.PersonaUserID})
	}

	brief, err := h.briefs.Build(ctx, req)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrCanvasNotConfigured):
			log.Printf("ℹ️  [INTERACT:%s] %s requested existing canvas with none configured", reqID, userID)
			msg := "Existing-canvas mode needs a Canvas selected in Settings. Pick one and try again."
			if err := h.client.PostMessage(ctx, userID, msg, nil); err != nil {
				log.Printf("❌ [INTERACT:%s] Failed to send settings prompt: %v", reqID, err)
			}
		case errors.As(err, &validationErr):
			msg := fmt.Sprintf("I couldn't create that brief: %s", validationErr.Message)
			if err := h.client.PostMessage(ctx, userID, msg, nil); err != nil {
				log.Printf("❌ [INTERACT:%s] Failed to send validation message: %v", reqID, err)
			}
		default:
			log.Printf("❌ [INTERACT:%s] Failed to build brief for %s: %v", reqID, userID, err)
			h.apologize(userID)
		}
		return
	}

	if brief.DataSource == models.DataSourceCanvas {
		err = h.delivery.ShareCanvas(ctx, userID, brief)
	} else {
		err = h.delivery.DeliverBrief(ctx, userID, brief)
	}
	if err != nil {
		log.Printf("❌ [INTERACT:%s] Failed to deliver brief for %s: %v", reqID, userID, err)
		h.apologize(userID)
		return
	}
	log.Printf("✅ [INTERACT:%s] Completed %s brief for %s", reqID, brief.DataSource, userID)
}
