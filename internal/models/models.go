package models

// Role is a caller's position in the staffing hierarchy. Roles are resolved
// once per chat from the tracker and cached for the process lifetime.
type Role string

const (
	RoleAdmin            Role = "admin"
	RoleManager          Role = "manager"
	RoleShiftSupervisor  Role = "shift_supervisor"
	RoleEmployee         Role = "employee"
	RoleOutsStaffManager Role = "outs_staff_manager"
	RoleBrigadier        Role = "brigadier"
	RoleOutsEmployee     Role = "outs_employee"
)

var roleRanks = map[Role]int{
	RoleAdmin:            7,
	RoleManager:          6,
	RoleShiftSupervisor:  5,
	RoleEmployee:         4,
	RoleOutsStaffManager: 3,
	RoleBrigadier:        2,
	RoleOutsEmployee:     1,
}

// Rank returns the role's position in the hierarchy. Unknown roles rank 0 and
// therefore never pass a permission check.
func (r Role) Rank() int {
	return roleRanks[r]
}

// AllRoles lists the seven permitted roles in rank order, highest first.
func AllRoles() []Role {
	return []Role{
		RoleAdmin,
		RoleManager,
		RoleShiftSupervisor,
		RoleEmployee,
		RoleOutsStaffManager,
		RoleBrigadier,
		RoleOutsEmployee,
	}
}

// Queue identifiers partitioning records inside the tracker.
const (
	QueueEmployees  = "EMP"
	QueueCompanies  = "COMP"
	QueueCities     = "CITY"
	QueueWarehouses = "WH"
	QueueShifts     = "SHIFT"
	QueueRequests   = "REQ"
)

// IssueTypeTask is the issue type used for every record category.
const IssueTypeTask = "task"

// Issue is the tracker's generic record shape. Domain managers translate
// typed records to and from this form; nothing else touches it.
type Issue struct {
	Key          string         `json:"key,omitempty"`
	Queue        string         `json:"queue,omitempty"`
	Summary      string         `json:"summary,omitempty"`
	Description  string         `json:"description,omitempty"`
	Type         string         `json:"type,omitempty"`
	Status       string         `json:"status,omitempty"`
	CustomFields map[string]any `json:"customFields,omitempty"`
}

// Employee is one EMP issue's custom fields.
type Employee struct {
	Key                 string
	LastName            string
	FirstName           string
	MiddleName          string
	BirthDate           string
	Phone               string
	Telegram            string
	Company             string
	Objects             []string
	WorkEmail           string
	PassportSeries      string
	PassportNumber      string
	PassportDivision    string
	PassportIssueDate   string
	PassportIssuedBy    string
	BirthCity           string
	RegistrationAddress string
	RegistrationDate    string
	Education           string
	Bank                string
	AccountNumber       string
	BIC                 string
	CorrAccount         string
	BankINN             string
	Role                Role
	Status              string
}

// Company is one COMP issue's custom fields.
type Company struct {
	Key           string
	DirectorFIO   string
	FullName      string
	ShortName     string
	INN           string
	ActualAddress string
	LegalAddress  string
	OGRNIP        string
	OGRN          string
	OKPO          string
	Bank          string
	BIK           string
	CorrAccount   string
	Account       string
	Email         string
	Phone         string
	OKVED         string
	TaxSystem     string
}

// City is one CITY issue's custom fields.
type City struct {
	Key  string
	Name string
}

// Warehouse is one WH issue's custom fields.
type Warehouse struct {
	Key               string
	Name              string
	Synonyms          []string
	PartnerChatID     string
	PartnerChatLink   string
	WarehouseChatID   string
	WarehouseChatLink string
	LegalEntity       string
	Area              string
	SelfOperated      string
	OpeningDate       string
	ClosingDate       string
	Status            string
	TgCS              string
	Phone             string
	WorkAccount       string
}

// Shift is one SHIFT issue's custom fields.
type Shift struct {
	Key               string
	Date              string
	Employee          string
	EmployeeName      string
	StartTime         string
	EndTime           string
	VestNumber        string
	Overtime          string
	NonProfileHours   string
	EquipmentTaken    []string
	EquipmentReturned []string
	Status            string
}

// Request is one REQ issue's custom fields.
//
// Invariant: AvailableSlots = max(0, RequiredEmployees - len(AppliedEmployees)),
// and AppliedEmployees holds no duplicates.
type Request struct {
	Key               string
	Title             string
	Description       string
	Requester         string
	RequesterName     string
	Object            string
	RequiredEmployees int
	AvailableSlots    int
	AppliedEmployees  []string
	Status            string
}
