package navigator

import (
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/romashorodok/room-directory/internal/directory"
	"github.com/romashorodok/room-directory/pkg/protocol"
)

// DefaultControlLimit bounds the live controls. Creating one past the limit
// evicts the oldest.
const DefaultControlLimit = 1024

// Registry owns the live switch-room controls, one Navigator per control id.
type Registry struct {
	sync.Mutex

	directory *directory.Directory
	origin    string
	controls  map[string]*Navigator
	order     []string
	limit     int
}

func NewRegistry(dir *directory.Directory, origin string) *Registry {
	return &Registry{
		directory: dir,
		origin:    origin,
		controls:  make(map[string]*Navigator),
		limit:     DefaultControlLimit,
	}
}

// Create instantiates a control. navigateFor receives the new id so the
// dispatch can be routed back to that control's listeners.
func (r *Registry) Create(navigateFor func(id string) protocol.NavigateFunc) (string, *Navigator, error) {
	id := uuid.NewString()
	nav, err := New(Params{
		Directory: r.directory,
		Origin:    r.origin,
		Navigate:  navigateFor(id),
	})
	if err != nil {
		return "", nil, err
	}

	r.Lock()
	defer r.Unlock()

	for len(r.order) >= r.limit {
		delete(r.controls, r.order[0])
		r.order = r.order[1:]
	}
	r.controls[id] = nav
	r.order = append(r.order, id)
	return id, nav, nil
}

func (r *Registry) Get(id string) (*Navigator, error) {
	r.Lock()
	defer r.Unlock()

	nav, exist := r.controls[id]
	if !exist {
		return nil, ErrControlNotExist
	}
	return nav, nil
}

func (r *Registry) Remove(id string) error {
	r.Lock()
	defer r.Unlock()

	if _, exist := r.controls[id]; !exist {
		return ErrControlNotExist
	}
	delete(r.controls, id)
	if idx := slices.Index(r.order, id); idx >= 0 {
		r.order = slices.Delete(r.order, idx, idx+1)
	}
	return nil
}

func (r *Registry) Len() int {
	r.Lock()
	defer r.Unlock()
	return len(r.controls)
}
