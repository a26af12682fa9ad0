package router

import (
	"bytes"
	"dishrank-restaurant-api/controllers/check"
	"dishrank-restaurant-api/controllers/dish"
	"dishrank-restaurant-api/controllers/restaurant"
	"dishrank-restaurant-api/controllers/restaurantDish"
	"dishrank-restaurant-api/models"
	"dishrank-restaurant-api/repositories"
	dishService "dishrank-restaurant-api/services/dish"
	restaurantService "dishrank-restaurant-api/services/restaurant"
	restaurantDishService "dishrank-restaurant-api/services/restaurantDish"
	"dishrank-restaurant-api/structs"
	"dishrank-restaurant-api/testutil"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const missingID = "0f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a"

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	db := testutil.NewTestDB(t)
	restaurantRepository := repositories.NewRestaurantRepository(db)
	dishRepository := repositories.NewDishRepository(db)

	route := Router(Controllers{
		Check:      check.NewCheckController(db),
		Restaurant: restaurant.NewRestaurantController(restaurantService.NewRestaurantService(restaurantRepository)),
		Dish:       dish.NewDishController(dishService.NewDishService(dishRepository)),
		RestaurantDish: restaurantDish.NewRestaurantDishController(
			restaurantDishService.NewRestaurantDishService(restaurantRepository, dishRepository, nil),
		),
	})
	return route, db
}

func request(route *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	route.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) structs.ErrorResponse {
	var response structs.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func restaurantBody() map[string]interface{} {
	return map[string]interface{}{
		"name":    "La Pergola",
		"address": "Via Alberto Cadlolo 101",
		"type":    "ITALIANA",
		"website": "https://lapergola.com",
	}
}

func dishBody() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Tiramisu",
		"description": "Postre de cafe",
		"price":       12.5,
		"category":    "POSTRE",
	}
}

func TestProbeAndCheckLive(t *testing.T) {
	route, _ := newTestRouter(t)

	w := request(route, http.MethodGet, "/read-probe", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(route, http.MethodGet, "/check-live", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var alive check.AliveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alive))
	assert.True(t, alive.Success)
	assert.Equal(t, "ok", alive.Info.Database)

	w = request(route, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dishrank_restaurant_api_http_requests_total")
}

func TestRestaurantRoutes(t *testing.T) {
	route, _ := newTestRouter(t)

	w := request(route, http.MethodPost, "/restaurants", restaurantBody())
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Restaurant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ITALIANA", created.Type)

	w = request(route, http.MethodGet, "/restaurants", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var all []models.Restaurant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 1)

	w = request(route, http.MethodGet, "/restaurants/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	update := restaurantBody()
	update["name"] = "Osteria Francescana"
	w = request(route, http.MethodPut, "/restaurants/"+created.ID, update)
	assert.Equal(t, http.StatusOK, w.Code)
	var updated models.Restaurant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Osteria Francescana", updated.Name)

	w = request(route, http.MethodDelete, "/restaurants/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = request(route, http.MethodGet, "/restaurants/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Restaurant not found", decodeError(t, w).Message)
}

func TestRestaurantRoutesValidation(t *testing.T) {
	route, _ := newTestRouter(t)

	body := restaurantBody()
	body["type"] = "FRANCESA"
	w := request(route, http.MethodPost, "/restaurants", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid type", decodeError(t, w).Message)

	body = restaurantBody()
	delete(body, "name")
	w = request(route, http.MethodPost, "/restaurants", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeError(t, w)
	assert.Equal(t, "Invalid request data", response.Message)
	assert.Contains(t, response.Errors, structs.FieldError{Field: "Name", Tag: "required"})

	body = restaurantBody()
	body["website"] = "not a website"
	w = request(route, http.MethodPost, "/restaurants", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = request(route, http.MethodGet, "/restaurants/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed (uuid is expected)", decodeError(t, w).Message)

	w = request(route, http.MethodPut, "/restaurants/"+missingID, restaurantBody())
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = request(route, http.MethodDelete, "/restaurants/"+missingID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDishRoutes(t *testing.T) {
	route, _ := newTestRouter(t)

	w := request(route, http.MethodPost, "/dishes", dishBody())
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Dish
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "12.5", created.Price.String())

	w = request(route, http.MethodGet, "/dishes/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(route, http.MethodGet, "/dishes", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	update := dishBody()
	update["category"] = "BEBIDA"
	w = request(route, http.MethodPut, "/dishes/"+created.ID, update)
	assert.Equal(t, http.StatusOK, w.Code)

	body := dishBody()
	body["category"] = "SOPA"
	w = request(route, http.MethodPost, "/dishes", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid category", decodeError(t, w).Message)

	body = dishBody()
	body["price"] = -1
	w = request(route, http.MethodPost, "/dishes", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid price", decodeError(t, w).Message)

	w = request(route, http.MethodGet, "/dishes/1234", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = request(route, http.MethodDelete, "/dishes/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = request(route, http.MethodGet, "/dishes/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Dish not found", decodeError(t, w).Message)
}

func TestRestaurantDishRoutes(t *testing.T) {
	route, db := newTestRouter(t)
	dishes := testutil.SeedDishes(t, db, 3)
	seeded := testutil.SeedRestaurant(t, db, dishes[0])
	base := "/restaurants/" + seeded.ID + "/dishes"

	w := request(route, http.MethodPost, base+"/"+dishes[1].ID, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var withDish models.Restaurant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &withDish))
	assert.ElementsMatch(t, []string{dishes[0].ID, dishes[1].ID}, testutil.DishIDs(withDish.Dishes))

	w = request(route, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var listed []models.Dish
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)

	w = request(route, http.MethodGet, base+"/"+dishes[1].ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(route, http.MethodGet, base+"/"+dishes[2].ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Dish not associated with restaurant", decodeError(t, w).Message)

	w = request(route, http.MethodPut, base, []string{dishes[2].ID})
	assert.Equal(t, http.StatusOK, w.Code)
	var replaced models.Restaurant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &replaced))
	assert.Equal(t, []string{dishes[2].ID}, testutil.DishIDs(replaced.Dishes))

	w = request(route, http.MethodPut, base, []string{dishes[0].ID, missingID})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "One or more dishes not found", decodeError(t, w).Message)

	w = request(route, http.MethodDelete, base+"/"+dishes[2].ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = request(route, http.MethodDelete, base+"/"+dishes[2].ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = request(route, http.MethodPost, "/restaurants/"+missingID+"/dishes/"+dishes[0].ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Restaurant not found", decodeError(t, w).Message)

	w = request(route, http.MethodPost, base+"/"+missingID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Dish not found", decodeError(t, w).Message)
}
