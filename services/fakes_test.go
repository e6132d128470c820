package services

import (
	"context"
	"time"

	"agenda.link/models"
	"agenda.link/pkg/queryparams"
	"agenda.link/repositories"
)

// In-memory fakes of the repository interfaces. They reproduce the
// sentinel-error contract of the real GORM implementations, including
// the active-slot unique index.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) add(user models.User) *models.User {
	if user.ID == 0 {
		user.ID = r.nextID
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	stored := user
	r.users[stored.ID] = &stored
	return &stored
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	user.ID = r.nextID
	r.nextID++
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) FindProviderByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok || !user.Provider {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindAllProviders(_ context.Context) ([]models.User, error) {
	var providers []models.User
	for _, user := range r.users {
		if user.Provider {
			providers = append(providers, *user)
		}
	}
	return providers, nil
}

type fakeAppointmentRepo struct {
	appointments map[uint]*models.Appointment
	nextID       uint

	createdNotifications []*models.Notification
	lastListParams       queryparams.ListParams
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uint]*models.Appointment), nextID: 1}
}

func (r *fakeAppointmentRepo) add(appointment models.Appointment) *models.Appointment {
	if appointment.ID == 0 {
		appointment.ID = r.nextID
	}
	if appointment.ID >= r.nextID {
		r.nextID = appointment.ID + 1
	}
	stored := appointment
	r.appointments[stored.ID] = &stored
	return &stored
}

func (r *fakeAppointmentRepo) FindByID(_ context.Context, id uint) (*models.Appointment, error) {
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *appointment
	return &copied, nil
}

func (r *fakeAppointmentRepo) FindActiveBySlot(_ context.Context, providerID uint, date time.Time) (*models.Appointment, error) {
	for _, appointment := range r.appointments {
		if appointment.ProviderID == providerID && appointment.Date.Equal(date) && appointment.Active() {
			copied := *appointment
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeAppointmentRepo) FindActiveByUserPaginated(_ context.Context, userID uint, params queryparams.ListParams) ([]models.Appointment, int64, error) {
	r.lastListParams = params
	var all []models.Appointment
	for _, appointment := range r.appointments {
		if appointment.UserID == userID && appointment.Active() {
			all = append(all, *appointment)
		}
	}
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if all[j].Date.Before(all[i].Date) {
				all[i], all[j] = all[j], all[i]
			}
		}
	}
	total := int64(len(all))
	offset := params.Offset()
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + params.PerPage
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeAppointmentRepo) FindActiveByProviderBetween(_ context.Context, providerID uint, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, appointment := range r.appointments {
		if appointment.ProviderID == providerID && appointment.Active() &&
			!appointment.Date.Before(from) && !appointment.Date.After(to) {
			out = append(out, *appointment)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) CreateWithNotification(ctx context.Context, appointment *models.Appointment, notification *models.Notification) error {
	if _, err := r.FindActiveBySlot(ctx, appointment.ProviderID, appointment.Date); err == nil {
		return repositories.ErrDuplicate
	}
	appointment.ID = r.nextID
	r.nextID++
	stored := *appointment
	r.appointments[appointment.ID] = &stored
	r.createdNotifications = append(r.createdNotifications, notification)
	return nil
}

func (r *fakeAppointmentRepo) Save(_ context.Context, appointment *models.Appointment) error {
	if _, ok := r.appointments[appointment.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *appointment
	r.appointments[appointment.ID] = &stored
	return nil
}

type fakeNotificationRepo struct {
	notifications map[uint]*models.Notification
	nextID        uint
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[uint]*models.Notification), nextID: 1}
}

func (r *fakeNotificationRepo) add(notification models.Notification) *models.Notification {
	if notification.ID == 0 {
		notification.ID = r.nextID
	}
	if notification.ID >= r.nextID {
		r.nextID = notification.ID + 1
	}
	stored := notification
	r.notifications[stored.ID] = &stored
	return &stored
}

func (r *fakeNotificationRepo) FindByID(_ context.Context, id uint) (*models.Notification, error) {
	notification, ok := r.notifications[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *notification
	return &copied, nil
}

func (r *fakeNotificationRepo) FindAllByUser(_ context.Context, userID uint) ([]models.Notification, error) {
	var out []models.Notification
	for _, notification := range r.notifications {
		if notification.UserID == userID {
			out = append(out, *notification)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) Save(_ context.Context, notification *models.Notification) error {
	stored := *notification
	r.notifications[notification.ID] = &stored
	return nil
}

type fakeFileRepo struct {
	files  map[uint]*models.File
	nextID uint
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: make(map[uint]*models.File), nextID: 1}
}

func (r *fakeFileRepo) Create(_ context.Context, file *models.File) error {
	file.ID = r.nextID
	r.nextID++
	stored := *file
	r.files[file.ID] = &stored
	return nil
}

func (r *fakeFileRepo) FindByID(_ context.Context, id uint) (*models.File, error) {
	file, ok := r.files[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *file
	return &copied, nil
}

type enqueuedJob struct {
	kind    string
	payload any
}

type fakeQueue struct {
	jobs []enqueuedJob
}

func (q *fakeQueue) Enqueue(kind string, payload any) {
	q.jobs = append(q.jobs, enqueuedJob{kind: kind, payload: payload})
}

var (
	_ repositories.IUserRepository         = (*fakeUserRepo)(nil)
	_ repositories.IAppointmentRepository  = (*fakeAppointmentRepo)(nil)
	_ repositories.INotificationRepository = (*fakeNotificationRepo)(nil)
	_ repositories.IFileRepository         = (*fakeFileRepo)(nil)
	_ Enqueuer                             = (*fakeQueue)(nil)
)
