package dto

type RecordKlikRequest struct {
	NamaTombol string                 `json:"nama_tombol" validate:"required,min=1,max=100"`
	Halaman    string                 `json:"halaman" validate:"required,min=1,max=200"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

type KlikStatItem struct {
	NamaTombol string `json:"nama_tombol"`
	Total      int64  `json:"total"`
}
