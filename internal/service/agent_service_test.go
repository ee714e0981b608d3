package service

import (
	"context"
	"testing"

	"inventario/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type agentFixture struct {
	svc    AgentService
	agents *stubAgentRepo
	roles  *stubRoleRepo
	assets *stubAssetRepo
	roleID uuid.UUID
}

func newAgentFixture(t *testing.T) *agentFixture {
	t.Helper()
	roles := &stubRoleRepo{}
	role := &model.Role{Name: "Docente"}
	require.NoError(t, roles.Create(context.Background(), role))

	agents := &stubAgentRepo{roles: roles}
	assets := &stubAssetRepo{}
	return &agentFixture{
		svc:    NewAgentService(agents, roles, assets),
		agents: agents,
		roles:  roles,
		assets: assets,
		roleID: role.ID,
	}
}

func (f *agentFixture) createAgent(t *testing.T, dni *string) *model.Agent {
	t.Helper()
	agent, err := f.svc.Create(context.Background(), CreateAgentRequest{
		Name:     "Juan",
		Lastname: "García",
		DNI:      dni,
		RoleID:   f.roleID.String(),
	})
	require.NoError(t, err)
	return agent
}

func TestCreateAgentJoinsRole(t *testing.T) {
	f := newAgentFixture(t)
	agent := f.createAgent(t, nil)
	assert.Equal(t, "Docente", agent.Role.Name)
}

func TestCreateAgentRejectsUnknownRole(t *testing.T) {
	f := newAgentFixture(t)
	_, err := f.svc.Create(context.Background(), CreateAgentRequest{
		Name:     "Juan",
		Lastname: "García",
		RoleID:   uuid.NewString(),
	})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "El rol especificado no existe", apiErr.Message)
}

func TestCreateAgentRejectsDuplicateDNI(t *testing.T) {
	f := newAgentFixture(t)
	dni := "12345678"
	f.createAgent(t, &dni)

	_, err := f.svc.Create(context.Background(), CreateAgentRequest{
		Name:     "Pedro",
		Lastname: "López",
		DNI:      &dni,
		RoleID:   f.roleID.String(),
	})
	require.Error(t, err)
	assert.Equal(t, "El DNI ya está en uso", err.Error())
}

func TestUpdateAgentKeepsOtherFields(t *testing.T) {
	f := newAgentFixture(t)
	agent := f.createAgent(t, nil)

	newName := "Carlos"
	updated, err := f.svc.Update(context.Background(), agent.ID.String(), UpdateAgentRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Carlos", updated.Name)
	assert.Equal(t, "García", updated.Lastname)
	assert.Equal(t, f.roleID, updated.RoleID)
}

func TestGetAgentMalformedIDBehavesAsNotFound(t *testing.T) {
	f := newAgentFixture(t)
	_, err := f.svc.GetByID(context.Background(), "not-a-uuid")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "Agente no encontrado", apiErr.Message)
}

func TestDeleteAgentBlockedWhileAssetsAssigned(t *testing.T) {
	f := newAgentFixture(t)
	agent := f.createAgent(t, nil)

	asset := &model.Asset{
		Name:         "Notebook",
		SerialNumber: "SN-001",
		Status:       model.AssetStatusActive,
		AgentID:      &agent.ID,
	}
	require.NoError(t, f.assets.Create(context.Background(), asset))

	err := f.svc.Delete(context.Background(), agent.ID.String())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "No se puede eliminar un agente con activos asignados", apiErr.Message)

	// Once the asset is gone the agent can be removed
	require.NoError(t, f.assets.Delete(context.Background(), asset.ID))
	require.NoError(t, f.svc.Delete(context.Background(), agent.ID.String()))

	_, err = f.svc.GetByID(context.Background(), agent.ID.String())
	require.Error(t, err)
}
