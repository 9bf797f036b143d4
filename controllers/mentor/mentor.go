package mentorController

import (
	"time"

	"vikasini/config"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
)

const (
	openAIModelsURL = "https://api.openai.com/v1/models"
	geminiModelsURL = "https://generativelanguage.googleapis.com/v1beta/models"
)

// Controller hosts the mentor diagnostic endpoints: read-only reachability
// probes against the local inference server and the two hosted AI APIs.
// Results are never cached and probes are never retried.
type Controller struct {
	Config *config.Config
	client *resty.Client

	// Probe targets, overridable in tests.
	OpenAIURL string
	GeminiURL string
}

func New(cfg *config.Config) *Controller {
	return &Controller{
		Config:    cfg,
		client:    resty.New().SetTimeout(3 * time.Second),
		OpenAIURL: openAIModelsURL,
		GeminiURL: geminiModelsURL,
	}
}

// probeMentor checks whether the local inference server answers its tags
// endpoint. Any transport failure or non-2xx response means unavailable.
func (ctl *Controller) probeMentor() (bool, []string) {
	resp, err := ctl.client.R().Get(ctl.Config.MentorURL + "/api/tags")
	if err != nil || resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return false, nil
	}

	var names []string
	for _, m := range gjson.GetBytes(resp.Body(), "models.#.name").Array() {
		names = append(names, m.String())
	}
	return true, names
}

// Status reports availability of the local mentor inference server.
func (ctl *Controller) Status(c *fiber.Ctx) error {
	available, modelNames := ctl.probeMentor()
	return c.JSON(fiber.Map{
		"available": available,
		"url":       ctl.Config.MentorURL,
		"models":    modelNames,
	})
}

// StatusHead is the HEAD variant: 200 when the mentor is reachable, 503
// otherwise, no body.
func (ctl *Controller) StatusHead(c *fiber.Ctx) error {
	available, _ := ctl.probeMentor()
	if available {
		return c.SendStatus(fiber.StatusOK)
	}
	return c.SendStatus(fiber.StatusServiceUnavailable)
}

// Check is the full environment and connectivity diagnostic. A hosted API
// counts as reachable on any 2xx, or on an unauthenticated response (the
// service answered; only the key is wrong or absent). Secrets are reported
// as set/unset, never echoed.
func (ctl *Controller) Check(c *fiber.Ctx) error {
	mentorUp, modelNames := ctl.probeMentor()

	openaiUp := ctl.probeHosted(ctl.OpenAIURL, map[string]string{
		"Authorization": "Bearer " + ctl.Config.OpenAIApiKey,
	})
	geminiUp := ctl.probeHosted(ctl.GeminiURL, map[string]string{
		"x-goog-api-key": ctl.Config.GeminiApiKey,
	})

	return c.JSON(fiber.Map{
		"environment": fiber.Map{
			"env":           ctl.Config.Env,
			"publicBaseUrl": ctl.Config.PublicBaseURL,
			"openaiKeySet":  ctl.Config.OpenAIApiKey != "",
			"geminiKeySet":  ctl.Config.GeminiApiKey != "",
		},
		"services": fiber.Map{
			"mentor": fiber.Map{"reachable": mentorUp, "url": ctl.Config.MentorURL, "models": modelNames},
			"openai": fiber.Map{"reachable": openaiUp},
			"gemini": fiber.Map{"reachable": geminiUp},
		},
	})
}

func (ctl *Controller) probeHosted(url string, headers map[string]string) bool {
	resp, err := ctl.client.R().SetHeaders(headers).Get(url)
	if err != nil {
		return false
	}
	code := resp.StatusCode()
	if code >= 200 && code < 300 {
		return true
	}
	// 401/403 means the endpoint answered but rejected the key
	return code == fiber.StatusUnauthorized || code == fiber.StatusForbidden
}
