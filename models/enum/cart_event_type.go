package enum

// CartEventType 表示購物車事件的類型
type CartEventType string

const (
	CartEventItemAdded   CartEventType = "cart.item_added"
	CartEventItemRemoved CartEventType = "cart.item_removed"
	CartEventQuantitySet CartEventType = "cart.quantity_set"
	CartEventCleared     CartEventType = "cart.cleared"
)

func CartEventTypes() []CartEventType {
	return []CartEventType{CartEventItemAdded, CartEventItemRemoved, CartEventQuantitySet, CartEventCleared}
}
