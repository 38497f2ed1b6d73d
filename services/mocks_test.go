package services

import (
	"MedicareClinic/models"
	"MedicareClinic/repositories"
	"context"
	"errors"
)

// Compile-time checks that the mocks satisfy the repository interfaces.
var (
	_ repositories.PatientRepository      = (*MockPatientRepository)(nil)
	_ repositories.VisitRepository        = (*MockVisitRepository)(nil)
	_ repositories.MedicineRepository     = (*MockMedicineRepository)(nil)
	_ repositories.PrescriptionRepository = (*MockPrescriptionRepository)(nil)
	_ repositories.ActivityLogRepository  = (*MockActivityLogRepository)(nil)
	_ repositories.UserRepository         = (*MockUserRepository)(nil)
)

type MockPatientRepository struct {
	MaxIDFunc      func(ctx context.Context) (int, error)
	InsertFunc     func(ctx context.Context, patient *models.Patient) error
	GetByIDFunc    func(ctx context.Context, id int) (*models.Patient, error)
	GetByPhoneFunc func(ctx context.Context, phone string) (*models.Patient, error)
	ListFunc       func(ctx context.Context, filter repositories.PatientFilter) ([]models.Patient, int64, error)
	NameExistsFunc func(ctx context.Context, name string, excludeID int) (bool, error)
	UpdateFunc     func(ctx context.Context, patient *models.Patient) error
	SetImageFunc   func(ctx context.Context, id int, filename string) error
	DeleteFunc     func(ctx context.Context, id int) error
}

func (m *MockPatientRepository) MaxID(ctx context.Context) (int, error) {
	if m.MaxIDFunc != nil {
		return m.MaxIDFunc(ctx)
	}
	return 0, nil
}

func (m *MockPatientRepository) Insert(ctx context.Context, patient *models.Patient) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id int) (*models.Patient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockPatientRepository) GetByPhone(ctx context.Context, phone string) (*models.Patient, error) {
	if m.GetByPhoneFunc != nil {
		return m.GetByPhoneFunc(ctx, phone)
	}
	return nil, nil
}

func (m *MockPatientRepository) List(ctx context.Context, filter repositories.PatientFilter) ([]models.Patient, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *MockPatientRepository) NameExists(ctx context.Context, name string, excludeID int) (bool, error) {
	if m.NameExistsFunc != nil {
		return m.NameExistsFunc(ctx, name, excludeID)
	}
	return false, nil
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) SetImage(ctx context.Context, id int, filename string) error {
	if m.SetImageFunc != nil {
		return m.SetImageFunc(ctx, id, filename)
	}
	return nil
}

func (m *MockPatientRepository) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type MockVisitRepository struct {
	MaxIDFunc         func(ctx context.Context) (int, error)
	ExistsByPhoneFunc func(ctx context.Context, phone string) (bool, error)
	InsertFunc        func(ctx context.Context, visit *models.Visit) error
	GetByIDFunc       func(ctx context.Context, id int) (*models.Visit, error)
	ListFunc          func(ctx context.Context, filter repositories.VisitFilter) ([]models.Visit, int64, error)
	ListByPatientFunc func(ctx context.Context, patientID int) ([]models.Visit, error)
	ListAllFunc       func(ctx context.Context) ([]models.Visit, error)
	ListByDateFunc    func(ctx context.Context, date string) ([]models.Visit, error)
	UpdateFunc        func(ctx context.Context, visit *models.Visit) error
	DeleteFunc        func(ctx context.Context, id int) error
}

func (m *MockVisitRepository) MaxID(ctx context.Context) (int, error) {
	if m.MaxIDFunc != nil {
		return m.MaxIDFunc(ctx)
	}
	return 0, nil
}

func (m *MockVisitRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	if m.ExistsByPhoneFunc != nil {
		return m.ExistsByPhoneFunc(ctx, phone)
	}
	return false, nil
}

func (m *MockVisitRepository) Insert(ctx context.Context, visit *models.Visit) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, visit)
	}
	return nil
}

func (m *MockVisitRepository) GetByID(ctx context.Context, id int) (*models.Visit, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockVisitRepository) List(ctx context.Context, filter repositories.VisitFilter) ([]models.Visit, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *MockVisitRepository) ListByPatient(ctx context.Context, patientID int) ([]models.Visit, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(ctx, patientID)
	}
	return nil, nil
}

func (m *MockVisitRepository) ListAll(ctx context.Context) ([]models.Visit, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockVisitRepository) ListByDate(ctx context.Context, date string) ([]models.Visit, error) {
	if m.ListByDateFunc != nil {
		return m.ListByDateFunc(ctx, date)
	}
	return nil, nil
}

func (m *MockVisitRepository) Update(ctx context.Context, visit *models.Visit) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, visit)
	}
	return nil
}

func (m *MockVisitRepository) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type MockMedicineRepository struct {
	MaxIDFunc         func(ctx context.Context) (int, error)
	ExistsByPhoneFunc func(ctx context.Context, phone string) (bool, error)
	InsertFunc        func(ctx context.Context, medicine *models.Medicine) error
	GetByIDFunc       func(ctx context.Context, id int) (*models.Medicine, error)
	ListFunc          func(ctx context.Context, filter repositories.MedicineFilter) ([]models.Medicine, int64, error)
	ListByPatientFunc func(ctx context.Context, patientID int) ([]models.Medicine, error)
	ListAllFunc       func(ctx context.Context) ([]models.Medicine, error)
	ListByDateFunc    func(ctx context.Context, date string) ([]models.Medicine, error)
	UpdateFunc        func(ctx context.Context, medicine *models.Medicine) error
	DeleteFunc        func(ctx context.Context, id int) error
}

func (m *MockMedicineRepository) MaxID(ctx context.Context) (int, error) {
	if m.MaxIDFunc != nil {
		return m.MaxIDFunc(ctx)
	}
	return 0, nil
}

func (m *MockMedicineRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	if m.ExistsByPhoneFunc != nil {
		return m.ExistsByPhoneFunc(ctx, phone)
	}
	return false, nil
}

func (m *MockMedicineRepository) Insert(ctx context.Context, medicine *models.Medicine) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, medicine)
	}
	return nil
}

func (m *MockMedicineRepository) GetByID(ctx context.Context, id int) (*models.Medicine, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockMedicineRepository) List(ctx context.Context, filter repositories.MedicineFilter) ([]models.Medicine, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *MockMedicineRepository) ListByPatient(ctx context.Context, patientID int) ([]models.Medicine, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(ctx, patientID)
	}
	return nil, nil
}

func (m *MockMedicineRepository) ListAll(ctx context.Context) ([]models.Medicine, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockMedicineRepository) ListByDate(ctx context.Context, date string) ([]models.Medicine, error) {
	if m.ListByDateFunc != nil {
		return m.ListByDateFunc(ctx, date)
	}
	return nil, nil
}

func (m *MockMedicineRepository) Update(ctx context.Context, medicine *models.Medicine) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, medicine)
	}
	return nil
}

func (m *MockMedicineRepository) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type MockPrescriptionRepository struct {
	GetByVisitIDFunc    func(ctx context.Context, visitID int) (*models.Prescription, error)
	SaveFunc            func(ctx context.Context, prescription *models.Prescription) error
	DeleteByVisitIDFunc func(ctx context.Context, visitID int) error
}

func (m *MockPrescriptionRepository) GetByVisitID(ctx context.Context, visitID int) (*models.Prescription, error) {
	if m.GetByVisitIDFunc != nil {
		return m.GetByVisitIDFunc(ctx, visitID)
	}
	return nil, nil
}

func (m *MockPrescriptionRepository) Save(ctx context.Context, prescription *models.Prescription) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, prescription)
	}
	return nil
}

func (m *MockPrescriptionRepository) DeleteByVisitID(ctx context.Context, visitID int) error {
	if m.DeleteByVisitIDFunc != nil {
		return m.DeleteByVisitIDFunc(ctx, visitID)
	}
	return nil
}

type MockActivityLogRepository struct {
	InsertFunc func(ctx context.Context, entry *models.ActivityLog) error
	ListFunc   func(ctx context.Context, filter repositories.ActivityLogFilter) ([]models.ActivityLog, int64, error)
}

func (m *MockActivityLogRepository) Insert(ctx context.Context, entry *models.ActivityLog) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, entry)
	}
	return nil
}

func (m *MockActivityLogRepository) List(ctx context.Context, filter repositories.ActivityLogFilter) ([]models.ActivityLog, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type MockUserRepository struct {
	EmailExistsFunc    func(ctx context.Context, email string) (bool, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*models.User, error)
	GetByUUIDFunc      func(ctx context.Context, uuid string) (*models.User, error)
	GetByUUIDsFunc     func(ctx context.Context, uuids []string) ([]models.User, error)
	CreateFunc         func(ctx context.Context, user *models.User) error
	UpdateProfileFunc  func(ctx context.Context, uuid, screenname, email string) error
	UpdatePasswordFunc func(ctx context.Context, uuid, hashedPassword string) error
	UpdateApprovalFunc func(ctx context.Context, uuid string, approved bool) error
	GetAllFunc         func(ctx context.Context) ([]models.User, error)
	DeleteFunc         func(ctx context.Context, uuid string) error
	DeleteCacheFunc    func(ctx context.Context, identifier string) error
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.EmailExistsFunc != nil {
		return m.EmailExistsFunc(ctx, email)
	}
	return false, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) GetByUUID(ctx context.Context, uuid string) (*models.User, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, uuid)
	}
	return nil, nil
}

func (m *MockUserRepository) GetByUUIDs(ctx context.Context, uuids []string) ([]models.User, error) {
	if m.GetByUUIDsFunc != nil {
		return m.GetByUUIDsFunc(ctx, uuids)
	}
	return nil, nil
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, uuid, screenname, email string) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, uuid, screenname, email)
	}
	return nil
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, uuid, hashedPassword string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, uuid, hashedPassword)
	}
	return nil
}

func (m *MockUserRepository) UpdateApproval(ctx context.Context, uuid string, approved bool) error {
	if m.UpdateApprovalFunc != nil {
		return m.UpdateApprovalFunc(ctx, uuid, approved)
	}
	return nil
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) Delete(ctx context.Context, uuid string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, uuid)
	}
	return nil
}

func (m *MockUserRepository) DeleteCache(ctx context.Context, identifier string) error {
	if m.DeleteCacheFunc != nil {
		return m.DeleteCacheFunc(ctx, identifier)
	}
	return nil
}
