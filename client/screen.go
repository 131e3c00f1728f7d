package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ScreenState, admin CRUD ekranının durumları.
//
// Akış:
//
//	Idle -> Loading -> Loaded | Errored
//	Loaded -> FormOpen -> Submitting -> Loaded (başarı)
//	                                 -> FormOpen (validasyon hatası: form açık kalır)
//	Loaded -> ConfirmingDelete -> Deleting -> Loaded
type ScreenState int

const (
	ScreenIdle ScreenState = iota
	ScreenLoading
	ScreenLoaded
	ScreenErrored
	ScreenFormOpen
	ScreenSubmitting
	ScreenConfirmingDelete
	ScreenDeleting
)

// String, debug ve log için okunabilir isim döner.
func (s ScreenState) String() string {
	switch s {
	case ScreenIdle:
		return "idle"
	case ScreenLoading:
		return "loading"
	case ScreenLoaded:
		return "loaded"
	case ScreenErrored:
		return "errored"
	case ScreenFormOpen:
		return "form_open"
	case ScreenSubmitting:
		return "submitting"
	case ScreenConfirmingDelete:
		return "confirming_delete"
	case ScreenDeleting:
		return "deleting"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Screen, tek bir entity'nin admin liste ekranını yönetir:
// Controller'ı state machine ile sarar. UI yalnızca State() okur
// ve event metodlarını (Open, Submit, ...) çağırır.
type Screen[T any] struct {
	ctrl *Controller[T]

	mu    sync.Mutex
	state ScreenState

	// editingID: FormOpen'da düzenlenen kaydın ID'si, boşsa yeni kayıt.
	editingID string
	// deleteID: ConfirmingDelete'te onay bekleyen kaydın ID'si.
	deleteID string
	// formErr: son submit'in validasyon hatası — form açıkken gösterilir.
	formErr error
}

// NewScreen, verilen controller için boş (Idle) ekran oluşturur.
func NewScreen[T any](ctrl *Controller[T]) *Screen[T] {
	return &Screen[T]{ctrl: ctrl, state: ScreenIdle}
}

// State, mevcut durumu döner.
func (s *Screen[T]) State() ScreenState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// FormError, form açıkken gösterilecek validasyon hatasını döner.
func (s *Screen[T]) FormError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formErr
}

// EditingID, form açıkken düzenlenen kaydın ID'sini döner (boş = yeni kayıt).
func (s *Screen[T]) EditingID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID
}

// Load, listeyi çeker. Idle, Loaded ve Errored durumlarından çağrılabilir —
// Errored'dan çağrılması retry demektir.
func (s *Screen[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.state != ScreenIdle && s.state != ScreenLoaded && s.state != ScreenErrored {
		s.mu.Unlock()
		return fmt.Errorf("cannot load in state %s", s.state)
	}
	s.state = ScreenLoading
	s.mu.Unlock()

	err := s.ctrl.FetchAll(ctx)

	s.mu.Lock()
	if err != nil {
		s.state = ScreenErrored
	} else {
		s.state = ScreenLoaded
	}
	s.mu.Unlock()
	return err
}

// OpenCreateForm, boş formu açar. Sadece Loaded'dan geçilir.
func (s *Screen[T]) OpenCreateForm() error {
	return s.openForm("")
}

// OpenEditForm, verilen kaydın formunu açar.
func (s *Screen[T]) OpenEditForm(id string) error {
	if id == "" {
		return errors.New("edit form requires an id")
	}
	return s.openForm(id)
}

func (s *Screen[T]) openForm(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != ScreenLoaded {
		return fmt.Errorf("cannot open form in state %s", s.state)
	}
	s.state = ScreenFormOpen
	s.editingID = id
	s.formErr = nil
	return nil
}

// CloseForm, formu kaydetmeden kapatır.
func (s *Screen[T]) CloseForm() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != ScreenFormOpen {
		return fmt.Errorf("cannot close form in state %s", s.state)
	}
	s.state = ScreenLoaded
	s.editingID = ""
	s.formErr = nil
	return nil
}

// Submit, formu gönderir. editingID boşsa create, doluysa update.
//
// Validasyon hatasında (ErrValidationFailed) form AÇIK kalır ve hata
// FormError'dan okunur — kullanıcı düzeltip tekrar dener. Diğer
// hatalarda da form açık kalır ama çağıran isterse kapatabilir.
func (s *Screen[T]) Submit(ctx context.Context, req any) error {
	s.mu.Lock()
	if s.state != ScreenFormOpen {
		s.mu.Unlock()
		return fmt.Errorf("cannot submit in state %s", s.state)
	}
	id := s.editingID
	s.state = ScreenSubmitting
	s.mu.Unlock()

	var err error
	if id == "" {
		_, err = s.ctrl.Create(ctx, req)
	} else {
		_, err = s.ctrl.Update(ctx, id, req)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = ScreenFormOpen
		s.formErr = err
		return err
	}
	s.state = ScreenLoaded
	s.editingID = ""
	s.formErr = nil
	return nil
}

// RequestDelete, silme onay diyaloğunu açar.
func (s *Screen[T]) RequestDelete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != ScreenLoaded {
		return fmt.Errorf("cannot request delete in state %s", s.state)
	}
	if id == "" {
		return errors.New("delete requires an id")
	}
	s.state = ScreenConfirmingDelete
	s.deleteID = id
	return nil
}

// CancelDelete, onay diyaloğunu kapatır.
func (s *Screen[T]) CancelDelete() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != ScreenConfirmingDelete {
		return fmt.Errorf("cannot cancel delete in state %s", s.state)
	}
	s.state = ScreenLoaded
	s.deleteID = ""
	return nil
}

// ConfirmDelete, silmeyi gerçekleştirir. Hata olsa da olmasa da
// diyalog kapanır — başarısız silme listede görünür kalır.
func (s *Screen[T]) ConfirmDelete(ctx context.Context) error {
	s.mu.Lock()
	if s.state != ScreenConfirmingDelete {
		s.mu.Unlock()
		return fmt.Errorf("cannot confirm delete in state %s", s.state)
	}
	id := s.deleteID
	s.state = ScreenDeleting
	s.mu.Unlock()

	err := s.ctrl.Delete(ctx, id)

	s.mu.Lock()
	s.state = ScreenLoaded
	s.deleteID = ""
	s.mu.Unlock()
	return err
}
