package service

import (
	"context"
	"sync"

	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository stubs backing the service tests. They mimic the gorm
// contract the services rely on: gorm.ErrRecordNotFound on a miss and
// generated IDs on insert.

type stubUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[uuid.UUID]model.User{}}
}

func (r *stubUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		result = append(result, user)
	}
	return result, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type stubRoleRepo struct {
	roles []model.Role
}

func (r *stubRoleRepo) Create(_ context.Context, role *model.Role) error {
	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}
	r.roles = append(r.roles, *role)
	return nil
}

func (r *stubRoleRepo) Update(_ context.Context, role *model.Role) error {
	for i := range r.roles {
		if r.roles[i].ID == role.ID {
			r.roles[i] = *role
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubRoleRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.roles {
		if r.roles[i].ID == id {
			r.roles = append(r.roles[:i], r.roles[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubRoleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Role, error) {
	for _, role := range r.roles {
		if role.ID == id {
			found := role
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*model.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			found := role
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRoleRepo) List(_ context.Context) ([]model.Role, error) {
	return append([]model.Role(nil), r.roles...), nil
}

type stubAgentRepo struct {
	agents []model.Agent
	roles  *stubRoleRepo
}

func (r *stubAgentRepo) joinRole(agent model.Agent) model.Agent {
	if r.roles != nil {
		if role, err := r.roles.FindByID(context.Background(), agent.RoleID); err == nil {
			agent.Role = *role
		}
	}
	return agent
}

func (r *stubAgentRepo) Create(_ context.Context, agent *model.Agent) error {
	if agent.ID == uuid.Nil {
		agent.ID = uuid.New()
	}
	r.agents = append(r.agents, *agent)
	return nil
}

func (r *stubAgentRepo) Update(_ context.Context, agent *model.Agent) error {
	for i := range r.agents {
		if r.agents[i].ID == agent.ID {
			r.agents[i] = *agent
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubAgentRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.agents {
		if r.agents[i].ID == id {
			r.agents = append(r.agents[:i], r.agents[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubAgentRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Agent, error) {
	for _, agent := range r.agents {
		if agent.ID == id {
			found := r.joinRole(agent)
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAgentRepo) FindByDNI(_ context.Context, dni string) (*model.Agent, error) {
	for _, agent := range r.agents {
		if agent.DNI != nil && *agent.DNI == dni {
			found := r.joinRole(agent)
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAgentRepo) List(_ context.Context) ([]model.Agent, error) {
	result := make([]model.Agent, 0, len(r.agents))
	for _, agent := range r.agents {
		result = append(result, r.joinRole(agent))
	}
	return result, nil
}

func (r *stubAgentRepo) CountByRole(_ context.Context, roleID uuid.UUID) (int64, error) {
	var count int64
	for _, agent := range r.agents {
		if agent.RoleID == roleID {
			count++
		}
	}
	return count, nil
}

type stubAssetRepo struct {
	assets  []model.Asset
	history []model.InventoryHistory
}

func (r *stubAssetRepo) Create(_ context.Context, asset *model.Asset) error {
	if asset.ID == uuid.Nil {
		asset.ID = uuid.New()
	}
	r.assets = append(r.assets, *asset)
	return nil
}

func (r *stubAssetRepo) Update(_ context.Context, asset *model.Asset) error {
	for i := range r.assets {
		if r.assets[i].ID == asset.ID {
			r.assets[i] = *asset
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubAssetRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.assets {
		if r.assets[i].ID == id {
			r.assets = append(r.assets[:i], r.assets[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubAssetRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Asset, error) {
	for _, asset := range r.assets {
		if asset.ID == id {
			found := asset
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAssetRepo) FindBySerial(_ context.Context, serial string) (*model.Asset, error) {
	for _, asset := range r.assets {
		if asset.SerialNumber == serial {
			found := asset
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAssetRepo) List(_ context.Context, filter repository.AssetFilter, offset, limit int) ([]model.Asset, int64, error) {
	var matched []model.Asset
	for _, asset := range r.assets {
		if filter.Status != "" && asset.Status != filter.Status {
			continue
		}
		if filter.AgentID != nil && (asset.AgentID == nil || *asset.AgentID != *filter.AgentID) {
			continue
		}
		matched = append(matched, asset)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *stubAssetRepo) ListByAgent(_ context.Context, agentID *uuid.UUID) ([]model.Asset, error) {
	var result []model.Asset
	for _, asset := range r.assets {
		if agentID == nil {
			if asset.AgentID == nil {
				result = append(result, asset)
			}
			continue
		}
		if asset.AgentID != nil && *asset.AgentID == *agentID {
			result = append(result, asset)
		}
	}
	return result, nil
}

func (r *stubAssetRepo) CountByAgent(_ context.Context, agentID uuid.UUID) (int64, error) {
	var count int64
	for _, asset := range r.assets {
		if asset.AgentID != nil && *asset.AgentID == agentID {
			count++
		}
	}
	return count, nil
}

func (r *stubAssetRepo) CountByLocation(_ context.Context, locationID uuid.UUID) (int64, error) {
	var count int64
	for _, asset := range r.assets {
		if asset.LocationID != nil && *asset.LocationID == locationID {
			count++
		}
	}
	return count, nil
}

func (r *stubAssetRepo) CountByCategory(_ context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	for _, asset := range r.assets {
		if asset.CategoryID != nil && *asset.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *stubAssetRepo) CountByNomenclature(_ context.Context, nomenclatureID uuid.UUID) (int64, error) {
	var count int64
	for _, asset := range r.assets {
		if asset.NomenclatureID != nil && *asset.NomenclatureID == nomenclatureID {
			count++
		}
	}
	return count, nil
}

func (r *stubAssetRepo) CreateHistory(_ context.Context, record *model.InventoryHistory) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	r.history = append(r.history, *record)
	return nil
}

func (r *stubAssetRepo) ListHistory(_ context.Context, assetID uuid.UUID) ([]model.InventoryHistory, error) {
	var result []model.InventoryHistory
	for _, record := range r.history {
		if record.AssetID == assetID {
			result = append(result, record)
		}
	}
	return result, nil
}

type stubLocationRepo struct {
	locations []model.Location
}

func (r *stubLocationRepo) Create(_ context.Context, location *model.Location) error {
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}
	r.locations = append(r.locations, *location)
	return nil
}

func (r *stubLocationRepo) Update(_ context.Context, location *model.Location) error {
	for i := range r.locations {
		if r.locations[i].ID == location.ID {
			r.locations[i] = *location
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubLocationRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.locations {
		if r.locations[i].ID == id {
			r.locations = append(r.locations[:i], r.locations[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubLocationRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Location, error) {
	for _, location := range r.locations {
		if location.ID == id {
			found := location
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubLocationRepo) List(_ context.Context) ([]model.Location, error) {
	return append([]model.Location(nil), r.locations...), nil
}

type stubCategoryRepo struct {
	categories []model.Category
}

func (r *stubCategoryRepo) Create(_ context.Context, category *model.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	r.categories = append(r.categories, *category)
	return nil
}

func (r *stubCategoryRepo) Update(_ context.Context, category *model.Category) error {
	for i := range r.categories {
		if r.categories[i].ID == category.ID {
			r.categories[i] = *category
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	for _, category := range r.categories {
		if category.ID == id {
			found := category
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	return append([]model.Category(nil), r.categories...), nil
}

type stubNomenclatureRepo struct {
	nomenclatures []model.Nomenclature
}

func (r *stubNomenclatureRepo) Create(_ context.Context, nomenclature *model.Nomenclature) error {
	if nomenclature.ID == uuid.Nil {
		nomenclature.ID = uuid.New()
	}
	r.nomenclatures = append(r.nomenclatures, *nomenclature)
	return nil
}

func (r *stubNomenclatureRepo) Update(_ context.Context, nomenclature *model.Nomenclature) error {
	for i := range r.nomenclatures {
		if r.nomenclatures[i].ID == nomenclature.ID {
			r.nomenclatures[i] = *nomenclature
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubNomenclatureRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.nomenclatures {
		if r.nomenclatures[i].ID == id {
			r.nomenclatures = append(r.nomenclatures[:i], r.nomenclatures[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubNomenclatureRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Nomenclature, error) {
	for _, nomenclature := range r.nomenclatures {
		if nomenclature.ID == id {
			found := nomenclature
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubNomenclatureRepo) FindByCode(_ context.Context, code string) (*model.Nomenclature, error) {
	for _, nomenclature := range r.nomenclatures {
		if nomenclature.Code == code {
			found := nomenclature
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubNomenclatureRepo) List(_ context.Context) ([]model.Nomenclature, error) {
	return append([]model.Nomenclature(nil), r.nomenclatures...), nil
}

// stubTxManager runs the function directly; the stubs have no transactions.
type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

// recordingNotifier captures published events for assertions
type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) Publish(event string, _ interface{}) {
	n.events = append(n.events, event)
}

var (
	_ repository.UserRepository         = (*stubUserRepo)(nil)
	_ repository.RoleRepository         = (*stubRoleRepo)(nil)
	_ repository.AgentRepository        = (*stubAgentRepo)(nil)
	_ repository.AssetRepository        = (*stubAssetRepo)(nil)
	_ repository.LocationRepository     = (*stubLocationRepo)(nil)
	_ repository.CategoryRepository     = (*stubCategoryRepo)(nil)
	_ repository.NomenclatureRepository = (*stubNomenclatureRepo)(nil)
	_ repository.TransactionManager     = stubTxManager{}
	_ Notifier                          = (*recordingNotifier)(nil)
)
