package enums

// 餐廳類型
const (
	RestaurantItaliana      = "ITALIANA"
	RestaurantJaponesa      = "JAPONESA"
	RestaurantMexicana      = "MEXICANA"
	RestaurantColombiana    = "COLOMBIANA"
	RestaurantInternacional = "INTERNACIONAL"
)

// 餐點分類
const (
	DishEntrada     = "ENTRADA"
	DishPlatoFuerte = "PLATO_FUERTE"
	DishPostre      = "POSTRE"
	DishBebida      = "BEBIDA"
)

// 關聯異動事件
const (
	DishAddedEvent     = "restaurant.dish.added"
	DishesUpdatedEvent = "restaurant.dishes.updated"
	DishRemovedEvent   = "restaurant.dish.removed"
)

const (
	SubjectRestaurant = "restaurant"
	ServerInitLog     = "server.init"
)

var RestaurantTypes = []string{
	RestaurantItaliana,
	RestaurantJaponesa,
	RestaurantMexicana,
	RestaurantColombiana,
	RestaurantInternacional,
}

var DishCategories = []string{
	DishEntrada,
	DishPlatoFuerte,
	DishPostre,
	DishBebida,
}

func IsRestaurantType(value string) bool {
	return contains(RestaurantTypes, value)
}

func IsDishCategory(value string) bool {
	return contains(DishCategories, value)
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

// rabbitmq 連線池名稱
const RabbitConnectionName = "restaurant"
