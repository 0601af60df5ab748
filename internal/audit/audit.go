// Package audit writes one structured entry per directory mutation.
// Emails are masked before they reach the log.
package audit

import (
	"go.uber.org/zap"

	"github.com/dropDatabas3/rbacconsole/internal/directory"
	"github.com/dropDatabas3/rbacconsole/internal/observability/logger"
	"github.com/dropDatabas3/rbacconsole/internal/util"
)

// Trail logs store events. It implements directory.Observer through Observe.
type Trail struct {
	log   *zap.Logger
	store *directory.Store
}

// New returns a Trail writing to l, or to the "audit" named logger when l is nil.
func New(l *zap.Logger) *Trail {
	if l == nil {
		l = logger.Named("audit")
	}
	return &Trail{log: l}
}

// Attach subscribes the trail to s and returns the unsubscribe func.
// Once attached, add and edit entries also carry the record's details.
func (t *Trail) Attach(s *directory.Store) (cancel func()) {
	t.store = s
	return s.Subscribe(t.Observe)
}

func (t *Trail) Observe(ev directory.Event) {
	fields := []zap.Field{
		zap.String("event", string(ev.Collection)+"."+string(ev.Op)),
		logger.Collection(string(ev.Collection)),
		logger.Version(ev.Version),
	}
	switch ev.Collection {
	case directory.CollectionUsers:
		fields = append(fields, logger.UserID(ev.ID))
		if u, ok := t.lookupUser(ev); ok {
			fields = append(fields,
				zap.String("email", util.MaskEmail(u.Email)),
				logger.RoleName(u.Role),
				zap.String("status", string(u.Status)),
			)
		}
	case directory.CollectionRoles:
		fields = append(fields, logger.RoleID(ev.ID))
		if t.store != nil && ev.Op != directory.OpDelete {
			if r, ok := t.store.Roles().Get(ev.ID); ok {
				fields = append(fields, logger.RoleName(r.Name), logger.Count(len(r.Permissions)))
			}
		}
	}
	t.log.Info("directory mutation", fields...)
}

func (t *Trail) lookupUser(ev directory.Event) (directory.User, bool) {
	if t.store == nil || ev.Op == directory.OpDelete {
		return directory.User{}, false
	}
	return t.store.Users().Get(ev.ID)
}
