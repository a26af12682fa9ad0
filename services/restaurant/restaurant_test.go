package restaurant

import (
	"dishrank-restaurant-api/enums"
	"dishrank-restaurant-api/repositories"
	"dishrank-restaurant-api/services"
	"dishrank-restaurant-api/structs"
	"dishrank-restaurant-api/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const missingID = "3f0c8a50-6a9e-4c1b-9f0e-2b8b1f7d9a11"

func newService(t *testing.T) *RestaurantService {
	return NewRestaurantService(repositories.NewRestaurantRepository(testutil.NewTestDB(t)))
}

func validParam() structs.RestaurantParam {
	return structs.RestaurantParam{
		Name:    "Sushi Ya",
		Address: "Avenida 19 # 120-10",
		Type:    enums.RestaurantJaponesa,
		Website: "https://sushiya.co",
	}
}

func TestRestaurantService_Create(t *testing.T) {
	service := newService(t)

	restaurant, err := service.Create(validParam())
	require.NoError(t, err)
	assert.NotEmpty(t, restaurant.ID)
	assert.Equal(t, "Sushi Ya", restaurant.Name)
	assert.Equal(t, enums.RestaurantJaponesa, restaurant.Type)

	stored, err := service.FindOne(restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, restaurant.Website, stored.Website)
}

func TestRestaurantService_CreateInvalidType(t *testing.T) {
	service := newService(t)

	for _, restaurantType := range []string{"", "FRANCESA", "japonesa"} {
		param := validParam()
		param.Type = restaurantType
		_, err := service.Create(param)
		assert.True(t, services.IsBadRequest(err), restaurantType)
		assert.EqualError(t, err, "Invalid type")
	}

	all, err := service.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRestaurantService_CreateEveryType(t *testing.T) {
	service := newService(t)

	for _, restaurantType := range enums.RestaurantTypes {
		param := validParam()
		param.Type = restaurantType
		_, err := service.Create(param)
		assert.NoError(t, err, restaurantType)
	}

	all, err := service.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, len(enums.RestaurantTypes))
}

func TestRestaurantService_FindOneNotFound(t *testing.T) {
	_, err := newService(t).FindOne(missingID)
	assert.True(t, services.IsNotFound(err))
	assert.EqualError(t, err, "Restaurant not found")
}

func TestRestaurantService_Update(t *testing.T) {
	service := newService(t)
	restaurant, err := service.Create(validParam())
	require.NoError(t, err)

	param := validParam()
	param.Name = "Sushi Ya 2"
	param.Type = enums.RestaurantInternacional
	updated, err := service.Update(restaurant.ID, param)
	require.NoError(t, err)
	assert.Equal(t, restaurant.ID, updated.ID)
	assert.Equal(t, "Sushi Ya 2", updated.Name)

	stored, err := service.FindOne(restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.RestaurantInternacional, stored.Type)
}

func TestRestaurantService_UpdateErrors(t *testing.T) {
	service := newService(t)
	restaurant, err := service.Create(validParam())
	require.NoError(t, err)

	_, err = service.Update(missingID, validParam())
	assert.True(t, services.IsNotFound(err))

	// 類型錯誤優先於查無資料
	param := validParam()
	param.Type = "FRANCESA"
	_, err = service.Update(missingID, param)
	assert.True(t, services.IsBadRequest(err))

	_, err = service.Update(restaurant.ID, param)
	assert.True(t, services.IsBadRequest(err))
	stored, err := service.FindOne(restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.RestaurantJaponesa, stored.Type)
}

func TestRestaurantService_Remove(t *testing.T) {
	service := newService(t)
	restaurant, err := service.Create(validParam())
	require.NoError(t, err)

	require.NoError(t, service.Remove(restaurant.ID))
	_, err = service.FindOne(restaurant.ID)
	assert.True(t, services.IsNotFound(err))

	err = service.Remove(restaurant.ID)
	assert.True(t, services.IsNotFound(err))
}
