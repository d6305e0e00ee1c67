package settings

import (
	"reflect"

	"github.com/sirupsen/logrus"

	"rubra/engine"
)

// Entry is one resolved setting.
type Entry struct {
	Key     Key
	Enabled bool
}

// Plan is a document resolved against the key table, in document order.
type Plan []Entry

// Compile resolves every setting name in doc. Names that match no known
// key are returned separately, in document order.
func Compile(doc *Document) (Plan, []string) {
	var (
		plan    = make(Plan, 0, doc.Len())
		unknown []string
	)
	for _, c := range doc.Categories {
		for _, s := range c.Settings {
			k, ok := ParseKey(s.Key)
			if !ok {
				unknown = append(unknown, s.Key)
				continue
			}
			plan = append(plan, Entry{Key: k, Enabled: s.Enabled()})
		}
	}
	return plan, unknown
}

// Apply drives every entry onto target.
func (p Plan) Apply(target engine.Settings) {
	for _, e := range p {
		e.Key.Apply(target, e.Enabled)
	}
}

// Applier projects settings documents onto engine views.
type Applier struct {
	logger *logrus.Logger
}

// NewApplier creates an Applier that reports unknown keys to logger.
func NewApplier(logger *logrus.Logger) *Applier {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Applier{logger: logger}
}

// Apply sets every known toggle in doc on the view's engine settings.
// Unknown keys are logged and skipped. A view without settings is left
// alone. The document is never modified.
func (a *Applier) Apply(view engine.View, doc *Document) {
	if view == nil || doc == nil {
		return
	}
	target := view.Settings()
	if isNil(target) {
		return
	}

	plan, unknown := Compile(doc)
	for _, key := range unknown {
		a.logger.WithField("key", key).Warn("Unknown setting")
	}
	plan.Apply(target)

	a.logger.WithField("settings", len(plan)).Debug("Applied settings")
}

// Attach applies the store's current document to view and re-applies it
// after every change. The returned function stops further updates.
func Attach(store *Store, view engine.View, a *Applier) (detach func()) {
	a.Apply(view, store.Document())
	return store.Subscribe(func(doc *Document) {
		a.Apply(view, doc)
	})
}

func isNil(s engine.Settings) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
