package service

import (
	"context"
	"testing"

	"inventario/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleDeleteBlockedWhileAgentsAssigned(t *testing.T) {
	roles := &stubRoleRepo{}
	agents := &stubAgentRepo{roles: roles}
	svc := NewRoleService(roles, agents)

	role, err := svc.Create(context.Background(), RoleRequest{Name: "Docente"})
	require.NoError(t, err)

	agent := &model.Agent{Name: "Juan", Lastname: "García", RoleID: role.ID}
	require.NoError(t, agents.Create(context.Background(), agent))

	err = svc.Delete(context.Background(), role.ID.String())
	require.Error(t, err)
	assert.Equal(t, "No se puede eliminar un rol con agentes asignados", err.Error())

	require.NoError(t, agents.Delete(context.Background(), agent.ID))
	require.NoError(t, svc.Delete(context.Background(), role.ID.String()))
}

func TestRoleCreateRejectsDuplicateName(t *testing.T) {
	roles := &stubRoleRepo{}
	svc := NewRoleService(roles, &stubAgentRepo{roles: roles})

	_, err := svc.Create(context.Background(), RoleRequest{Name: "Director"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), RoleRequest{Name: "Director"})
	require.Error(t, err)
	assert.Equal(t, "Ya existe un rol con ese nombre", err.Error())
}

func TestLocationDeleteBlockedWhileAssetsAssigned(t *testing.T) {
	locations := &stubLocationRepo{}
	assets := &stubAssetRepo{}
	svc := NewLocationService(locations, assets)

	location, err := svc.Create(context.Background(), CatalogRequest{Name: "Aula 3"})
	require.NoError(t, err)

	asset := &model.Asset{Name: "Pizarra", SerialNumber: "SN-200", Status: model.AssetStatusActive, LocationID: &location.ID}
	require.NoError(t, assets.Create(context.Background(), asset))

	err = svc.Delete(context.Background(), location.ID.String())
	require.Error(t, err)
	assert.Equal(t, "No se puede eliminar una ubicación con activos asignados", err.Error())
}

func TestCategoryDeleteBlockedWhileAssetsAssigned(t *testing.T) {
	categories := &stubCategoryRepo{}
	assets := &stubAssetRepo{}
	svc := NewCategoryService(categories, assets)

	category, err := svc.Create(context.Background(), CatalogRequest{Name: "Informática"})
	require.NoError(t, err)

	asset := &model.Asset{Name: "Monitor", SerialNumber: "SN-201", Status: model.AssetStatusActive, CategoryID: &category.ID}
	require.NoError(t, assets.Create(context.Background(), asset))

	err = svc.Delete(context.Background(), category.ID.String())
	require.Error(t, err)
	assert.Equal(t, "No se puede eliminar una categoría con activos asignados", err.Error())
}

func TestNomenclatureCreateRejectsDuplicateCode(t *testing.T) {
	nomenclatures := &stubNomenclatureRepo{}
	svc := NewNomenclatureService(nomenclatures, &stubAssetRepo{})

	_, err := svc.Create(context.Background(), NomenclatureRequest{Code: "EQ-01", Name: "Equipos"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), NomenclatureRequest{Code: "EQ-01", Name: "Otro"})
	require.Error(t, err)
	assert.Equal(t, "El código ya está en uso", err.Error())
}

func TestNomenclatureGetMalformedIDBehavesAsNotFound(t *testing.T) {
	svc := NewNomenclatureService(&stubNomenclatureRepo{}, &stubAssetRepo{})
	_, err := svc.GetByID(context.Background(), "xyz")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "Nomenclatura no encontrada", apiErr.Message)
}
