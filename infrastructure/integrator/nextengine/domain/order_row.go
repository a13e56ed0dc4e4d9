package nedomain

// OrderRow é uma linha de pedido retornada por /api_v1_receiveorder_row/search.
// A API devolve todos os valores como texto.
type OrderRow struct {
	ReceiveOrderID string `json:"receive_order_id"`
	RowNo          string `json:"receive_order_row_no"`
	GoodsID        string `json:"receive_order_row_goods_id"`
	GoodsName      string `json:"receive_order_row_goods_name"`
	Quantity       string `json:"receive_order_row_quantity"`
	UnitPrice      string `json:"receive_order_row_unit_price"`
	SubTotalPrice  string `json:"receive_order_row_sub_total_price"`
	CancelFlag     string `json:"receive_order_row_cancel_flag"`
}

// OrderRowFields lista os campos pedidos na busca, na ordem aceita pela API
var OrderRowFields = []string{
	"receive_order_id",
	"receive_order_row_no",
	"receive_order_row_goods_id",
	"receive_order_row_goods_name",
	"receive_order_row_quantity",
	"receive_order_row_unit_price",
	"receive_order_row_sub_total_price",
	"receive_order_row_cancel_flag",
}

type Shop struct {
	ShopID   string `json:"shop_id"`
	ShopName string `json:"shop_name"`
}
