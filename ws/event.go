// Package ws, admin paneline gerçek zamanlı event dağıtımını sağlar.
//
// Mimari:
// - Hub: Tüm bağlantıları yöneten merkezi yapı (Observer pattern)
// - Client: Her WebSocket bağlantısını temsil eder
// - Event: Server → Client iletilen mesaj formatı
//
// Event akışı:
// 1. Admin bir içerik oluşturur → HTTP POST → Service → DB kayıt
// 2. Service, Hub'ın BroadcastToAll metodunu çağırır
// 3. Hub, event'i bağlı tüm admin client'larına iletir
// 4. Panelin diğer sekmeleri listelerini tazeler
//
// Ziyaretçi bir iletişim mesajı gönderdiğinde de aynı akış çalışır —
// panel açıksa okunmamış rozeti anında güncellenir.
package ws

// Event, WebSocket üzerinden iletilen bir mesajı temsil eder.
//
// Op (operation): Event türü — "partner_create", "message_received" vb.
// Data: Event'e özgü payload — oluşturulan kayıt, silinen kaydın ID'si vb.
// Seq (sequence number): Her outbound event'e verilen artan sayı.
//   Panel eksik event tespit etmek için seq'i takip eder.
type Event struct {
	Op   string `json:"op"`
	Data any    `json:"d,omitempty"`
	Seq  int64  `json:"seq,omitempty"`
}

// Client → Server operasyonları
const (
	OpHeartbeat = "heartbeat" // Client her 30sn'de gönderir — "hâlâ bağlıyım" sinyali
)

// Server → Client operasyonları
const (
	OpReady        = "ready"         // Bağlantı kurulduğunda ilk gönderilen
	OpHeartbeatAck = "heartbeat_ack" // Heartbeat'e yanıt

	// İçerik CRUD event'leri — Op formatı "<resource>_<action>".
	// Resource adları API path'leriyle aynıdır (partners, projects, ...).
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"

	// Ziyaretçi tarafından tetiklenen event'ler
	OpMessageReceived = "message_received" // Yeni iletişim formu mesajı
)

// ResourceOp, bir içerik tipinin CRUD event adını üretir.
// Örnek: ResourceOp("partners", ActionCreate) → "partners_create".
func ResourceOp(resource, action string) string {
	return resource + "_" + action
}

// ReadyData, bağlantı kurulduğunda client'a gönderilen ilk event'in payload'ı.
// Panel bu event ile okunmamış mesaj rozetini ilk değerine çeker.
type ReadyData struct {
	UnreadMessages int `json:"unread_messages"`
}

// DeleteData, *_delete event'lerinin payload'ı — sadece silinen kaydın ID'si.
type DeleteData struct {
	ID string `json:"id"`
}
