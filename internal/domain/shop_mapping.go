package domain

type NEShopMapping struct {
	ID        int `json:"id"`
	NEShopID  int `json:"ne_shop_id"`
	ChannelID int `json:"channel_id"`
}

type NEShop struct {
	ID   int    `json:"shop_id"`
	Name string `json:"shop_name"`
}
