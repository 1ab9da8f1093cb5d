package api

import (
	"time"

	"github.com/andikahakim/royba/internal/i18n"
	"github.com/andikahakim/royba/internal/services"
	"github.com/andikahakim/royba/internal/store"
)

const (
	authCookieName = "royba_session"
	authTokenTTL   = 12 * time.Hour
)

// Handler is the presentation shell over the domain services. It holds
// no state-machine logic: every route decodes input, calls one service
// operation, and encodes the result.
type Handler struct {
	accounts      *services.AccountService
	attendance    *services.AttendanceService
	tasks         *services.TaskService
	requests      *services.RequestService
	notifications *services.NotificationService
	export        *services.ExportService
	secretKey     []byte
	language      string
}

func NewHandler(records *store.Store, secretKey string, translator *i18n.Manager, language string) *Handler {
	notifications := services.NewNotificationService(records, nil)
	tasks := services.NewTaskService(records, records, records, nil)

	return &Handler{
		accounts:      services.NewAccountService(records),
		attendance:    services.NewAttendanceService(records, nil),
		tasks:         tasks,
		requests:      services.NewRequestService(records, records, tasks, notifications, translator, language, nil),
		notifications: notifications,
		export:        services.NewExportService(records, translator),
		secretKey:     []byte(secretKey),
		language:      translator.NormalizeLanguage(language),
	}
}
