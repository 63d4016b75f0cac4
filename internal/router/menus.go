package router

import (
	"staffbot/internal/format"
	"staffbot/internal/models"
)

// Verb identifiers, shared across namespaces. The same verb renders the same
// screen under every role that carries it; only the namespace in the produced
// tokens and the back targets differ.
const (
	verbShift             = "shift"
	verbStartShift        = "start_shift"
	verbEndShift          = "end_shift"
	verbConfirmStartShift = "confirm_start_shift"
	verbConfirmEndShift   = "confirm_end_shift"

	verbRequests             = "requests"
	verbViewRequests         = "view_requests"
	verbCreateRequest        = "create_request"
	verbConfirmCreateRequest = "confirm_create_request"
	verbRequestDetails       = "request_details"
	verbSelectEmployees      = "select_employees"
	verbSubmitSelf           = "submit_self"
	verbConfirmSubmit        = "confirm_submit"

	verbEmployees      = "employees"
	verbAddEmployee    = "add_employee"
	verbSearchEmployee = "search_employee"
	verbEditEmployee   = "edit_employee"
	verbBlockEmployee  = "block_employee"

	verbApproval        = "approval"
	verbApproveShifts   = "approve_shifts"
	verbApproveOvertime = "approve_overtime"

	verbSchedules    = "schedules"
	verbViewSchedule = "view_schedule"
	verbAddSchedule  = "add_schedule"

	verbAbsence     = "absence"
	verbPlanAbsence = "plan_absence"

	verbCities        = "cities"
	verbAddCity       = "add_city"
	verbWarehouses    = "warehouses"
	verbAddWarehouse  = "add_warehouse"
	verbCompanies     = "companies"
	verbAddCompany    = "add_company"
	verbRates         = "rates"
	verbCreateRate    = "create_rate"
	verbViewRates     = "view_rates"
	verbNotifications = "notifications"
	verbSendNotify    = "send_notification"
)

// roleConfig parameterizes the one sub-router over a namespace: which role
// owns it, which verbs it answers to, and what its main menu offers.
type roleConfig struct {
	namespace string // token prefix, without the trailing underscore
	minRole   models.Role
	verbs     map[string]bool
	mainMenu  []menuEntry
}

type menuEntry struct {
	label string
	verb  string
}

func verbSet(groups ...[]string) map[string]bool {
	set := make(map[string]bool)
	for _, group := range groups {
		for _, v := range group {
			set[v] = true
		}
	}
	return set
}

var (
	shiftVerbs = []string{
		verbShift, verbStartShift, verbEndShift, verbConfirmStartShift, verbConfirmEndShift,
	}
	requestVerbs = []string{
		verbRequests, verbViewRequests, verbCreateRequest, verbConfirmCreateRequest,
		verbRequestDetails, verbSelectEmployees, verbSubmitSelf, verbConfirmSubmit,
	}
	employeeMgmtVerbs = []string{
		verbEmployees, verbAddEmployee, verbSearchEmployee, verbEditEmployee, verbBlockEmployee,
	}
	approvalVerbs = []string{verbApproval, verbApproveShifts, verbApproveOvertime}
	scheduleVerbs = []string{verbSchedules, verbViewSchedule, verbAddSchedule}
	absenceVerbs  = []string{verbAbsence, verbPlanAbsence}
)

// roleConfigs drives the whole dispatch tree. The original system spelled out
// seven near-identical callback handlers; here each namespace is a row.
var roleConfigs = []roleConfig{
	{
		namespace: "admin",
		minRole:   models.RoleAdmin,
		verbs: verbSet(employeeMgmtVerbs, approvalVerbs, scheduleVerbs,
			[]string{
				verbCities, verbAddCity, verbWarehouses, verbAddWarehouse,
				verbCompanies, verbAddCompany, verbRates, verbCreateRate,
				verbViewRates, verbNotifications, verbSendNotify,
			}),
		mainMenu: []menuEntry{
			{"Управление сотрудниками", verbEmployees},
			{"Управление городами", verbCities},
			{"Управление складами", verbWarehouses},
			{"Управление компаниями", verbCompanies},
			{"Тарифы", verbRates},
			{"Уведомления", verbNotifications},
			{"Графики", verbSchedules},
			{"Согласование", verbApproval},
		},
	},
	{
		namespace: "manager",
		minRole:   models.RoleManager,
		verbs: verbSet(shiftVerbs, requestVerbs, employeeMgmtVerbs,
			approvalVerbs, scheduleVerbs, absenceVerbs),
		mainMenu: []menuEntry{
			{"Смена", verbShift},
			{"Согласование", verbApproval},
			{"Заявки", verbRequests},
			{"Сотрудники", verbEmployees},
			{"Графики", verbSchedules},
			{"Отсутствие", verbAbsence},
		},
	},
	{
		namespace: "supervisor",
		minRole:   models.RoleShiftSupervisor,
		verbs:     verbSet(shiftVerbs, requestVerbs, approvalVerbs, scheduleVerbs, absenceVerbs),
		mainMenu: []menuEntry{
			{"Смена", verbShift},
			{"Согласование", verbApproval},
			{"Заявки", verbRequests},
			{"Графики", verbSchedules},
			{"Отсутствие", verbAbsence},
		},
	},
	{
		namespace: "employee",
		minRole:   models.RoleEmployee,
		verbs:     verbSet(shiftVerbs, absenceVerbs),
		mainMenu: []menuEntry{
			{"Смена", verbShift},
			{"Отсутствие", verbAbsence},
		},
	},
	{
		namespace: "outs_manager",
		minRole:   models.RoleOutsStaffManager,
		verbs: verbSet(shiftVerbs, requestVerbs, employeeMgmtVerbs,
			[]string{verbRates, verbCreateRate, verbViewRates}),
		mainMenu: []menuEntry{
			{"Смена", verbShift},
			{"Заявки", verbRequests},
			{"Тарифы", verbRates},
			{"Сотрудники", verbEmployees},
		},
	},
	{
		namespace: "brigadier",
		minRole:   models.RoleBrigadier,
		verbs:     verbSet(shiftVerbs, requestVerbs),
		mainMenu: []menuEntry{
			{"Смена", verbShift},
			{"Заявки", verbRequests},
		},
	},
	{
		namespace: "outs_employee",
		minRole:   models.RoleOutsEmployee,
		verbs:     verbSet(shiftVerbs),
		mainMenu: []menuEntry{
			{"Смена", verbShift},
		},
	},
}

// configForRole returns the namespace owned by the role. Unknown roles fall
// back to the lowest-privilege staff menu.
func configForRole(role models.Role) *roleConfig {
	for i := range roleConfigs {
		if roleConfigs[i].minRole == role {
			return &roleConfigs[i]
		}
	}
	return configForRole(models.RoleEmployee)
}

// configForNamespace matches an action token's leading namespace.
func configForNamespace(action string) (*roleConfig, string, bool) {
	for i := range roleConfigs {
		prefix := roleConfigs[i].namespace + "_"
		if len(action) > len(prefix) && action[:len(prefix)] == prefix {
			return &roleConfigs[i], action[len(prefix):], true
		}
	}
	return nil, "", false
}

// token assembles a namespaced action token, optionally with trailing args.
func (c *roleConfig) token(parts ...string) string {
	out := c.namespace
	for _, p := range parts {
		out += "_" + p
	}
	return out
}

func (c *roleConfig) mainMenuButtons() []format.Button {
	buttons := make([]format.Button, 0, len(c.mainMenu))
	for _, entry := range c.mainMenu {
		buttons = append(buttons, format.Button{Label: entry.label, Action: c.token(entry.verb)})
	}
	return buttons
}
