package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/workclock/attendance-core-go/internal/domain/clocklog"
	"github.com/workclock/attendance-core-go/internal/domain/holiday"
	"github.com/workclock/attendance-core-go/internal/domain/leave"
	"github.com/workclock/attendance-core-go/internal/domain/postclock"
	"github.com/workclock/attendance-core-go/internal/domain/trip"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundle        *i18n.Bundle
	defaultLocale = "zh-TW"
)

type ctxKey struct{}

// Init loads the embedded locale files and sets the default locale.
func Init(defLocale string) error {
	if defLocale != "" {
		defaultLocale = defLocale
	}

	bundle = i18n.NewBundle(language.TraditionalChinese)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return fmt.Errorf("failed to read locales dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return fmt.Errorf("failed to read locale %s: %w", e.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, e.Name()); err != nil {
			return fmt.Errorf("failed to parse locale %s: %w", e.Name(), err)
		}
	}
	return nil
}

// WithLocale returns a context carrying the locale string (e.g. "zh-TW", "en").
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, ctxKey{}, locale)
}

// LocaleFromContext extracts the locale from the context, falling back to the
// configured default.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
		return v
	}
	return defaultLocale
}

// T translates a message ID using the locale from the context. Optional
// templateData fills template placeholders.
func T(ctx context.Context, messageID string, templateData ...map[string]any) string {
	if bundle == nil {
		return messageID
	}

	lang := LocaleFromContext(ctx)
	l := i18n.NewLocalizer(bundle, lang)

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(templateData) > 0 && templateData[0] != nil {
		cfg.TemplateData = templateData[0]
	}

	msg, err := l.Localize(cfg)
	if err != nil {
		return messageID
	}
	return msg
}

// MessageForError maps a business-rule error to its localized, user-facing
// message. Unmapped errors fall back to the raw error text.
func MessageForError(ctx context.Context, err error) string {
	switch {
	case errors.Is(err, leave.ErrOverlappingLeave):
		return T(ctx, "leave.overlap")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed),
		errors.Is(err, postclock.ErrPostClockAlreadyProcessed),
		errors.Is(err, trip.ErrTripAlreadyProcessed):
		return T(ctx, "request.alreadyProcessed")
	case errors.Is(err, leave.ErrEndBeforeStart),
		errors.Is(err, trip.ErrTripEndBeforeStart):
		return T(ctx, "leave.endBeforeStart")
	case errors.Is(err, leave.ErrOutsideWorkday):
		return T(ctx, "leave.outsideWorkday")
	case errors.Is(err, leave.ErrLunchBoundary):
		return T(ctx, "leave.lunchBoundary")
	case errors.Is(err, leave.ErrUnknownLeaveType):
		return T(ctx, "leave.unknownType")
	case errors.Is(err, holiday.ErrHolidayExists):
		return T(ctx, "holiday.dateExists")
	case errors.Is(err, clocklog.ErrScanInProgress):
		return T(ctx, "import.scanInProgress")
	default:
		return err.Error()
	}
}
