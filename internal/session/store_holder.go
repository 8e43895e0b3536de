package session

import (
	"context"

	"github.com/terraincognita07/venturehub/internal/models"
	"github.com/terraincognita07/venturehub/internal/store"
)

// StoreHolder keeps the snapshot under the currentUser key of the store,
// the single-session model used by the command line tools.
type StoreHolder struct {
	store *store.Store
}

func NewStoreHolder(st *store.Store) *StoreHolder {
	return &StoreHolder{store: st}
}

func (holder *StoreHolder) Load(ctx context.Context) (models.User, bool, error) {
	var user models.User
	ok, err := holder.store.ReadValue(ctx, store.CurrentUser, &user)
	if err != nil || !ok {
		return models.User{}, false, err
	}
	return user, true, nil
}

func (holder *StoreHolder) Save(ctx context.Context, user models.User) error {
	return holder.store.WriteValue(ctx, store.CurrentUser, user.Snapshot())
}

func (holder *StoreHolder) Clear(ctx context.Context) error {
	return holder.store.Clear(ctx, store.CurrentUser)
}

// MemoryHolder keeps the snapshot in a struct field. It backs a single
// request or a test.
type MemoryHolder struct {
	user *models.User
}

func NewMemoryHolder() *MemoryHolder {
	return &MemoryHolder{}
}

func (holder *MemoryHolder) Load(context.Context) (models.User, bool, error) {
	if holder.user == nil {
		return models.User{}, false, nil
	}
	return *holder.user, true, nil
}

func (holder *MemoryHolder) Save(_ context.Context, user models.User) error {
	snapshot := user.Snapshot()
	holder.user = &snapshot
	return nil
}

func (holder *MemoryHolder) Clear(context.Context) error {
	holder.user = nil
	return nil
}
