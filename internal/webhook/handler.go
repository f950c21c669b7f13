package webhook

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"repo-mirror/internal/mirror"
)

// HandleGitHubWebhook processes a GitHub webhook delivery: verify the
// signature over the exact raw body, interpret the payload, filter
// non-push events, and run the clone-vs-pull decision. The action runs
// inline so the response carries its outcome.
// @Summary GitHub webhook
// @Description Receive a GitHub push event and sync the local mirror
// @Tags Webhook
// @Accept json
// @Produce json
// @Param X-Hub-Signature-256 header string true "HMAC-SHA256 signature"
// @Param X-GitHub-Event header string true "Event type"
// @Success 200 {object} webhook.Result
// @Failure 400 {object} webhook.Result
// @Failure 401 {object} webhook.Result
// @Failure 404 {object} webhook.Result
// @Failure 500 {object} webhook.Result
// @Router /webhook [post]
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	// The signature is computed over the exact bytes GitHub sent.
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "webhook: failed to read body: %v", err)
		c.JSON(http.StatusBadRequest, Result{Success: false, Message: "Sync failed", Error: "failed to read request body"})
		return
	}

	signature := c.GetHeader("X-Hub-Signature-256")
	if err := h.security.ValidateGitHubSignature(body, signature); err != nil {
		h.l.Warnf(ctx, "webhook: signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, Result{Success: false, Message: "Sync failed", Error: "invalid signature"})
		return
	}

	if err := h.security.CheckRateLimit("github"); err != nil {
		h.l.Warnf(ctx, "webhook: rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, Result{Success: false, Message: "Sync failed", Error: "rate limit exceeded"})
		return
	}

	ev, err := h.parser.Parse(body)
	if err != nil {
		h.l.Errorf(ctx, "webhook: failed to parse payload: %v", err)
		writeError(c, "", err)
		return
	}

	// Non-push events are acknowledged and ignored before branch
	// extraction: a tag push legitimately lacks a resolvable branch.
	eventType := c.GetHeader("X-GitHub-Event")
	if eventType != "push" {
		h.l.Infof(ctx, "webhook: event %q for %s ignored", eventType, ev.Repository)
		c.JSON(http.StatusOK, Result{
			Success:    true,
			Repository: ev.Repository,
			Action:     "skipped",
			Message:    fmt.Sprintf("Event %q ignored; only push events trigger a sync", eventType),
		})
		return
	}

	if err := h.parser.ResolveBranch(ev); err != nil {
		h.l.Errorf(ctx, "webhook: %v", err)
		writeError(c, ev.Repository, err)
		return
	}

	out, err := h.syncUC.Sync(ctx, mirror.SyncInput{Event: *ev})
	if err != nil {
		h.l.Errorf(ctx, "webhook: sync failed for %s: %v", ev.Repository, err)
		writeError(c, ev.Repository, err)
		return
	}

	h.l.Infof(ctx, "webhook: %s", out.Message)
	writeOutcome(c, out)
}
