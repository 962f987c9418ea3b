package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rental-crm/internal/auth"
	"github.com/spec-kit/rental-crm/internal/backup"
	"github.com/spec-kit/rental-crm/internal/events"
	apperrors "github.com/spec-kit/rental-crm/pkg/util"
)

// BackupHandler exposes the database snapshot endpoints. Routes are gated to
// super admins in the router.
type BackupHandler struct {
	backups    *backup.Service
	dispatcher events.Dispatcher
}

// NewBackupHandler constructs handler.
func NewBackupHandler(backups *backup.Service, dispatcher events.Dispatcher) *BackupHandler {
	return &BackupHandler{backups: backups, dispatcher: dispatcher}
}

// Download handles GET /backup/: streams a freshly built signed archive.
func (h *BackupHandler) Download(c *fiber.Ctx) error {
	data, filename, err := h.backups.Backup(c.UserContext())
	if err != nil {
		return err
	}

	h.publish(c, events.EventBackupCreated, events.BackupCreatedPayload{
		Filename:  filename,
		SizeBytes: len(data),
	})

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

// Restore handles POST /restore/: the archive arrives as a multipart file
// upload, or as the raw request body.
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	data, err := restoreArchiveBytes(c)
	if err != nil {
		return err
	}
	result, err := h.backups.Restore(c.UserContext(), data)
	if err != nil {
		return err
	}

	h.publish(c, events.EventRestoreCompleted, events.RestoreCompletedPayload{
		BackupTimeUTC: result.RestoredAtUTC,
	})
	return c.JSON(result)
}

// restoreArchiveBytes prefers a multipart "file" field and falls back to the
// raw body.
func restoreArchiveBytes(c *fiber.Ctx) ([]byte, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return c.Body(), nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperrors.NewValidationError("unreadable archive upload", nil)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperrors.NewValidationError("unreadable archive upload", nil)
	}
	return data, nil
}

func (h *BackupHandler) publish(c *fiber.Ctx, eventType events.EventType, payload any) {
	if h.dispatcher == nil {
		return
	}
	actor := events.Actor{}
	if principal, ok := auth.PrincipalFromContext(c); ok {
		actor = events.Actor{Role: principal.Role, SubjectID: principal.SubjectID}
	}
	_ = h.dispatcher.Publish(c.UserContext(), events.NewEvent(eventType, actor, payload))
}
