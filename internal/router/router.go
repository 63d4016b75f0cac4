// Package router is the dispatch core: it turns an opaque action token plus
// the caller's role into exactly one render instruction, delegating to the
// domain managers for anything that touches the tracker.
package router

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"staffbot/internal/auth"
	"staffbot/internal/format"
	"staffbot/internal/managers"
	"staffbot/internal/models"
	"staffbot/internal/session"
	"staffbot/pkg/logger"
)

// Render is one screen: text plus a button column. Every route produces
// exactly one of these; there is no multi-step conversation state.
type Render struct {
	Text    string
	Buttons []format.Button
}

// RoleResolver maps a chat identity to a role.
type RoleResolver interface {
	Resolve(ctx context.Context, telegramID int64) models.Role
}

// EmployeeService is the slice of the employee manager the router needs.
type EmployeeService interface {
	Get(ctx context.Context, key string) (models.Employee, error)
	Search(ctx context.Context, criteria string) ([]models.Employee, error)
	SearchByTelegram(ctx context.Context, telegramID string) ([]models.Employee, error)
}

// RequestService is the slice of the request manager the router needs.
type RequestService interface {
	Get(ctx context.Context, key string) (models.Request, error)
	Search(ctx context.Context, criteria string) ([]models.Request, error)
	Create(ctx context.Context, req models.Request) (models.Request, error)
	AddEmployeeToRequest(ctx context.Context, requestKey, employeeKey string) (models.Request, error)
}

// ShiftService records shift starts and ends in the tracker.
type ShiftService interface {
	Create(ctx context.Context, shift models.Shift) (models.Shift, error)
	Close(ctx context.Context, key, endTime string) (models.Shift, error)
}

// Commenter posts best-effort audit comments on issues.
type Commenter interface {
	AddComment(ctx context.Context, key, text string) error
}

// Deps wires the router's collaborators.
type Deps struct {
	Log       *zap.Logger
	Resolver  RoleResolver
	Sessions  *session.Store
	Employees EmployeeService
	Requests  RequestService
	Shifts    ShiftService
	Comments  Commenter
	Now       func() time.Time
}

type Router struct {
	log       *zap.Logger
	resolver  RoleResolver
	sessions  *session.Store
	employees EmployeeService
	requests  RequestService
	shifts    ShiftService
	comments  Commenter
	now       func() time.Time
}

func New(deps Deps) *Router {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Router{
		log:       deps.Log,
		resolver:  deps.Resolver,
		sessions:  deps.Sessions,
		employees: deps.Employees,
		requests:  deps.Requests,
		shifts:    deps.Shifts,
		comments:  deps.Comments,
		now:       now,
	}
}

const (
	failureText    = "Произошла ошибка при обработке запроса. Попробуйте позже."
	deniedText     = "Недостаточно прав для выполнения этого действия."
	unknownText    = "Неизвестное действие. Вернитесь в главное меню."
	recordedSuffix = "Информация зафиксирована в Yandex Tracker."
)

// sessionShiftKey stores the open shift's issue key between the start and end
// confirmations of one chat.
const sessionShiftKey = "shift_key"

// OnStart handles the welcome command: resolve the role and render the main
// menu. The returned role is cached by the caller once the message id of the
// rendered menu is known.
func (r *Router) OnStart(ctx context.Context, identity int64) (Render, models.Role) {
	role := r.resolver.Resolve(ctx, identity)
	return r.mainMenu(role), role
}

// OnAction handles one button press and always produces a render. Errors from
// the managers are logged and converted to a generic failure screen here;
// nothing below the transport sees a raw error.
func (r *Router) OnAction(ctx context.Context, chatID int64, messageID int, identity int64, action string) Render {
	sess := r.sessions.Get(chatID)
	role := sess.Role
	if role == "" {
		role = r.resolver.Resolve(ctx, identity)
	}
	r.sessions.Update(chatID, messageID, session.Patch{Role: role})

	if action == format.BackToMain {
		return r.mainMenu(role)
	}

	cfg, rest, ok := configForNamespace(action)
	if !ok {
		r.log.Warn("unroutable action",
			zap.Int64(logger.FieldChatID, chatID),
			zap.String(logger.FieldAction, action))
		return Render{Text: unknownText, Buttons: format.BackOnly(format.BackToMain)}
	}

	if !auth.HasPermission(role, cfg.minRole) {
		r.log.Warn("permission denied",
			zap.Int64(logger.FieldChatID, chatID),
			zap.String(logger.FieldRole, string(role)),
			zap.String(logger.FieldAction, action))
		return Render{Text: deniedText, Buttons: format.BackOnly(format.BackToMain)}
	}

	verb, arg := parseVerb(rest)
	if !cfg.verbs[verb] {
		return Render{Text: deniedText, Buttons: format.BackOnly(format.BackToMain)}
	}

	return r.dispatch(ctx, chatID, messageID, identity, cfg, verb, arg)
}

// argVerbs carry positional arguments after the verb. Checked longest first
// so confirm_submit does not shadow confirm_start_shift parsing.
var argVerbs = []string{
	verbConfirmSubmit,
	verbRequestDetails,
	verbSelectEmployees,
	verbSubmitSelf,
	verbEditEmployee,
	verbBlockEmployee,
}

// parseVerb splits the post-namespace remainder into a verb and its trailing
// argument, tolerating a missing argument segment.
func parseVerb(rest string) (string, string) {
	for _, v := range argVerbs {
		if rest == v {
			return v, ""
		}
		if strings.HasPrefix(rest, v+"_") {
			return v, rest[len(v)+1:]
		}
	}
	return rest, ""
}

func (r *Router) dispatch(ctx context.Context, chatID int64, messageID int, identity int64, cfg *roleConfig, verb, arg string) Render {
	switch verb {
	case verbShift:
		return r.shiftMenu(cfg)
	case verbStartShift:
		return r.startShiftScreen(cfg)
	case verbEndShift:
		return r.endShiftScreen(cfg)
	case verbConfirmStartShift:
		return r.confirmStartShift(ctx, chatID, messageID, identity, cfg)
	case verbConfirmEndShift:
		return r.confirmEndShift(ctx, chatID, messageID, cfg)
	case verbRequests, verbViewRequests:
		return r.requestList(ctx, chatID, cfg)
	case verbCreateRequest:
		return r.createRequestScreen(cfg)
	case verbConfirmCreateRequest:
		return r.confirmCreateRequest(ctx, chatID, identity, cfg)
	case verbRequestDetails:
		return r.requestDetails(ctx, chatID, cfg, arg)
	case verbSelectEmployees:
		return r.selectEmployees(ctx, chatID, cfg, arg)
	case verbSubmitSelf:
		return r.submitToRequest(ctx, chatID, identity, cfg, arg, "")
	case verbConfirmSubmit:
		requestKey, employeeKey := splitArgs(arg)
		return r.submitToRequest(ctx, chatID, identity, cfg, requestKey, employeeKey)
	case verbEmployees:
		return r.employeeList(ctx, chatID, cfg)
	case verbAddEmployee:
		return r.addEmployeeScreen(cfg)
	case verbSearchEmployee:
		return r.searchEmployeeScreen(cfg)
	case verbEditEmployee:
		return r.employeeDetails(ctx, chatID, cfg, arg)
	case verbBlockEmployee:
		return Render{
			Text:    "Сотрудник заблокирован.",
			Buttons: format.BackOnly(cfg.token(verbEmployees)),
		}
	default:
		return r.staticScreen(cfg, verb)
	}
}

// splitArgs separates a two-part argument like "REQ-1_EMP-2"; issue keys never
// contain underscores, so the first segment is unambiguous.
func splitArgs(arg string) (string, string) {
	if i := strings.Index(arg, "_"); i >= 0 {
		return arg[:i], arg[i+1:]
	}
	return arg, ""
}

func (r *Router) mainMenu(role models.Role) Render {
	cfg := configForRole(role)
	return Render{
		Text:    welcomeText(role),
		Buttons: format.BuildMenu(cfg.mainMenuButtons(), format.BackToMain),
	}
}

func (r *Router) failure(chatID int64, op string, err error) Render {
	r.log.Error("route failed",
		zap.Int64(logger.FieldChatID, chatID),
		zap.String(logger.FieldOperation, op),
		zap.Error(err))
	return Render{Text: failureText, Buttons: format.BackOnly(format.BackToMain)}
}

// --- shift flow ---

func (r *Router) shiftMenu(cfg *roleConfig) Render {
	return Render{
		Text: "Управление сменой:\n- Выйти в смену\n- Закрыть смену\n- Взять оборудование\n- Сдать оборудование\n- Указать номер жилета\n- Указать переработку\n- Указать не профильные часы",
		Buttons: format.BuildMenu([]format.Button{
			{Label: "Выйти в смену", Action: cfg.token(verbStartShift)},
			{Label: "Закрыть смену", Action: cfg.token(verbEndShift)},
		}, format.BackToMain),
	}
}

func (r *Router) startShiftScreen(cfg *roleConfig) Render {
	return Render{
		Text: "Начало смены:\n\nДля начала смены укажите:\n1. Дату смены\n2. Время начала\n3. Номер жилета (если требуется)\n\nСистема зафиксирует начало смены в Yandex Tracker.",
		Buttons: format.BuildMenu([]format.Button{
			{Label: "Подтвердить начало смены", Action: cfg.token(verbConfirmStartShift)},
			{Label: "Отмена", Action: cfg.token(verbShift)},
		}, cfg.token(verbShift)),
	}
}

func (r *Router) endShiftScreen(cfg *roleConfig) Render {
	return Render{
		Text: "Завершение смены:\n\nДля завершения смены укажите:\n1. Время окончания\n2. Оборудование, которое сдаете\n3. Дополнительная информация\n\nСистема зафиксирует окончание смены в Yandex Tracker.",
		Buttons: format.BuildMenu([]format.Button{
			{Label: "Подтвердить окончание смены", Action: cfg.token(verbConfirmEndShift)},
			{Label: "Отмена", Action: cfg.token(verbShift)},
		}, cfg.token(verbShift)),
	}
}

func (r *Router) confirmStartShift(ctx context.Context, chatID int64, messageID int, identity int64, cfg *roleConfig) Render {
	now := r.now()
	shift, err := r.shifts.Create(ctx, models.Shift{
		Date:      now.Format("2006-01-02"),
		Employee:  strconv.FormatInt(identity, 10),
		StartTime: now.Format("15:04"),
		Status:    managers.ShiftStatusInProgress,
	})
	if err != nil {
		return r.failure(chatID, "start shift", err)
	}

	r.sessions.Update(chatID, messageID, session.Patch{
		Data: map[string]string{sessionShiftKey: shift.Key},
	})
	return Render{
		Text: "Смена успешно начата. " + recordedSuffix,
		Buttons: format.BuildMenu([]format.Button{
			{Label: "Закрыть смену", Action: cfg.token(verbEndShift)},
		}, cfg.token(verbShift)),
	}
}

func (r *Router) confirmEndShift(ctx context.Context, chatID int64, messageID int, cfg *roleConfig) Render {
	if key := r.sessions.Get(chatID).Data[sessionShiftKey]; key != "" {
		if _, err := r.shifts.Close(ctx, key, r.now().Format("15:04")); err != nil {
			return r.failure(chatID, "end shift", err)
		}
		r.sessions.Update(chatID, messageID, session.Patch{
			Data: map[string]string{sessionShiftKey: ""},
		})
	}
	return Render{
		Text:    "Смена успешно завершена. " + recordedSuffix,
		Buttons: format.BackOnly(cfg.token(verbShift)),
	}
}

// --- staffing request flow ---

func (r *Router) requestList(ctx context.Context, chatID int64, cfg *roleConfig) Render {
	requests, err := r.requests.Search(ctx, "")
	if err != nil {
		return r.failure(chatID, "list requests", err)
	}
	if len(requests) == 0 {
		return Render{
			Text: "Доступных заявок нет.",
			Buttons: format.BuildMenu([]format.Button{
				{Label: "Создать заявку", Action: cfg.token(verbCreateRequest)},
			}, format.BackToMain),
		}
	}

	var b strings.Builder
	b.WriteString("Доступные заявки:\n")
	buttons := make([]format.Button, 0, len(requests)+1)
	for i, req := range requests {
		b.WriteString("\n")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(req.Title)
		b.WriteString(" - ")
		b.WriteString(strconv.Itoa(req.RequiredEmployees))
		b.WriteString(" мест (")
		b.WriteString(strconv.Itoa(req.AvailableSlots))
		b.WriteString(" свободных)")
		buttons = append(buttons, format.Button{
			Label:  "Заявка " + strconv.Itoa(i+1),
			Action: cfg.token(verbRequestDetails, req.Key),
		})
	}
	buttons = append(buttons, format.Button{
		Label:  "Создать заявку",
		Action: cfg.token(verbCreateRequest),
	})
	return Render{Text: b.String(), Buttons: format.BuildMenu(buttons, format.BackToMain)}
}

func (r *Router) requestDetails(ctx context.Context, chatID int64, cfg *roleConfig, requestKey string) Render {
	req, err := r.requests.Get(ctx, requestKey)
	if err != nil {
		return r.failure(chatID, "request details", err)
	}

	text := format.FormatRequest(req)
	if req.AvailableSlots <= 0 {
		text += "\n\nК сожалению, все места в этой заявке уже заняты."
		return Render{Text: text, Buttons: format.BackOnly(cfg.token(verbRequests))}
	}

	text += "\n\nВы можете заявить себя или своих сотрудников на эту заявку."
	var buttons []format.Button
	switch cfg.minRole {
	case models.RoleManager, models.RoleShiftSupervisor:
		buttons = []format.Button{
			{Label: "Заявить своих сотрудников", Action: cfg.token(verbSelectEmployees, requestKey)},
			{Label: "Заявить себя", Action: cfg.token(verbSubmitSelf, requestKey)},
		}
	case models.RoleOutsStaffManager, models.RoleBrigadier:
		buttons = []format.Button{
			{Label: "Заявить сотрудников компании", Action: cfg.token(verbSelectEmployees, requestKey)},
		}
	default:
		buttons = []format.Button{
			{Label: "Заявить себя", Action: cfg.token(verbSubmitSelf, requestKey)},
		}
	}
	return Render{Text: text, Buttons: format.BuildMenu(buttons, cfg.token(verbRequests))}
}

const selectEmployeesLimit = 10

func (r *Router) selectEmployees(ctx context.Context, chatID int64, cfg *roleConfig, requestKey string) Render {
	employees, err := r.employees.Search(ctx, "")
	if err != nil {
		return r.failure(chatID, "select employees", err)
	}

	buttons := make([]format.Button, 0, selectEmployeesLimit)
	for _, emp := range employees {
		if len(buttons) == selectEmployeesLimit {
			break
		}
		buttons = append(buttons, format.Button{
			Label:  strings.TrimSpace(emp.LastName + " " + emp.FirstName),
			Action: cfg.token(verbConfirmSubmit, requestKey, emp.Key),
		})
	}
	return Render{
		Text:    "Выберите сотрудника для заявки:",
		Buttons: format.BuildMenu(buttons, cfg.token(verbRequests)),
	}
}

// submitToRequest applies one employee to a request. An empty employeeKey
// means the caller applies themselves.
func (r *Router) submitToRequest(ctx context.Context, chatID int64, identity int64, cfg *roleConfig, requestKey, employeeKey string) Render {
	if employeeKey == "" {
		employeeKey = r.selfEmployeeKey(ctx, identity)
	}

	req, err := r.requests.AddEmployeeToRequest(ctx, requestKey, employeeKey)
	if errors.Is(err, managers.ErrNoAvailableSlots) {
		return Render{
			Text:    format.FormatRequest(req) + "\n\nК сожалению, все места в этой заявке уже заняты.",
			Buttons: format.BackOnly(cfg.token(verbRequests)),
		}
	}
	if err != nil {
		return r.failure(chatID, "submit to request", err)
	}

	if err := r.comments.AddComment(ctx, requestKey, "Сотрудник "+employeeKey+" заявлен на смену."); err != nil {
		r.log.Warn("request comment failed",
			zap.String(logger.FieldIssueKey, requestKey),
			zap.Error(err))
	}

	return Render{
		Text: "Сотрудник успешно заявлен на смену. " + recordedSuffix,
		Buttons: format.BuildMenu([]format.Button{
			{Label: "Посмотреть заявки", Action: cfg.token(verbViewRequests)},
		}, cfg.token(verbRequests)),
	}
}

// selfEmployeeKey finds the caller's employee record; an unregistered caller
// is applied under a synthetic key derived from the chat identity.
func (r *Router) selfEmployeeKey(ctx context.Context, identity int64) string {
	id := strconv.FormatInt(identity, 10)
	employees, err := r.employees.SearchByTelegram(ctx, id)
	if err != nil || len(employees) == 0 {
		return models.QueueEmployees + "-" + id
	}
	return employees[0].Key
}

func (r *Router) createRequestScreen(cfg *roleConfig) Render {
	return Render{
		Text: "Создание заявки на сотрудников:\n\nДля создания заявки укажите:\n1. Объект (склад)\n2. Количество необходимых сотрудников\n3. Требуемые должности/навыки\n4. Дата и время работы\n\nСистема создаст заявку в Yandex Tracker, которая будет доступна для заявления сотрудникам.",
		Buttons: format.BuildMenu([]format.Button{
			{Label: "Создать заявку", Action: cfg.token(verbConfirmCreateRequest)},
		}, cfg.token(verbRequests)),
	}
}

func (r *Router) confirmCreateRequest(ctx context.Context, chatID int64, identity int64, cfg *roleConfig) Render {
	_, err := r.requests.Create(ctx, models.Request{
		Title:             "Заявка на сотрудников",
		Description:       "Создана через бота",
		Requester:         strconv.FormatInt(identity, 10),
		RequiredEmployees: 1,
	})
	if err != nil {
		return r.failure(chatID, "create request", err)
	}
	return Render{
		Text: "Заявка успешно создана. " + recordedSuffix,
		Buttons: format.BuildMenu([]format.Button{
			{Label: "Посмотреть заявки", Action: cfg.token(verbViewRequests)},
		}, cfg.token(verbRequests)),
	}
}

// --- employee management flow ---

const employeeListLimit = 10

func (r *Router) employeeList(ctx context.Context, chatID int64, cfg *roleConfig) Render {
	employees, err := r.employees.Search(ctx, "")
	if err != nil {
		return r.failure(chatID, "list employees", err)
	}

	var b strings.Builder
	b.WriteString("Список сотрудников:\n")
	buttons := make([]format.Button, 0, employeeListLimit+2)
	if len(employees) == 0 {
		b.WriteString("\nСотрудники не найдены.")
	}
	for i, emp := range employees {
		fio := strings.TrimSpace(emp.LastName + " " + emp.FirstName + " " + emp.MiddleName)
		b.WriteString("\n")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(fio)
		if len(buttons) < employeeListLimit {
			buttons = append(buttons, format.Button{
				Label:  fio,
				Action: cfg.token(verbEditEmployee, emp.Key),
			})
		}
	}
	buttons = append(buttons,
		format.Button{Label: "Добавить сотрудника", Action: cfg.token(verbAddEmployee)},
		format.Button{Label: "Найти сотрудника", Action: cfg.token(verbSearchEmployee)},
	)
	return Render{Text: b.String(), Buttons: format.BuildMenu(buttons, format.BackToMain)}
}

func (r *Router) addEmployeeScreen(cfg *roleConfig) Render {
	return Render{
		Text:    "Создание сотрудника:\n\nВведите данные сотрудника по следующим полям:\n1. Фамилия\n2. Имя\n3. Отчество\n4. Дата рождения\n5. Телефон\n6. Telegram (ID или @username)\n7. Компания\n8. Рабочая почта\n\nДля аутстафф сотрудников также потребуются:\n- Серия паспорта\n- Номер паспорта\n- и другие данные",
		Buttons: format.BackOnly(cfg.token(verbEmployees)),
	}
}

func (r *Router) searchEmployeeScreen(cfg *roleConfig) Render {
	return Render{
		Text:    "Поиск сотрудника:\n\nВведите ФИО или ID сотрудника для поиска:",
		Buttons: format.BackOnly(cfg.token(verbEmployees)),
	}
}

func (r *Router) employeeDetails(ctx context.Context, chatID int64, cfg *roleConfig, employeeKey string) Render {
	emp, err := r.employees.Get(ctx, employeeKey)
	if err != nil {
		return r.failure(chatID, "employee details", err)
	}
	return Render{
		Text: format.FormatEmployee(emp),
		Buttons: format.BuildMenu([]format.Button{
			{Label: "Заблокировать", Action: cfg.token(verbBlockEmployee, employeeKey)},
		}, cfg.token(verbEmployees)),
	}
}
