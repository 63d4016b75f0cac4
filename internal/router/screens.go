package router

import (
	"staffbot/internal/format"
	"staffbot/internal/models"
)

// roleTitles are the human-readable role names shown in the welcome screen.
var roleTitles = map[models.Role]string{
	models.RoleAdmin:            "Администратор",
	models.RoleManager:          "Менеджер",
	models.RoleShiftSupervisor:  "Старший смены",
	models.RoleEmployee:         "Сотрудник",
	models.RoleOutsStaffManager: "Менеджер аутстафф компании",
	models.RoleBrigadier:        "Бригадир",
	models.RoleOutsEmployee:     "Аутстафф сотрудник",
}

func welcomeText(role models.Role) string {
	title, ok := roleTitles[role]
	if !ok {
		title = roleTitles[models.RoleEmployee]
	}
	return "Добро пожаловать в систему управления персоналом!\nВаша роль: " + title + "\n\nВыберите действие из меню ниже:"
}

// staticScreen covers the informational verbs that render fixed text and
// navigation only. Data-backed screens live in router.go.
func (r *Router) staticScreen(cfg *roleConfig, verb string) Render {
	switch verb {
	case verbApproval:
		return Render{
			Text: "Согласование:\n- Согласовать смены\n- Согласовать переработки\n- Согласовать не профильные часы",
			Buttons: format.BuildMenu([]format.Button{
				{Label: "Согласовать смены", Action: cfg.token(verbApproveShifts)},
				{Label: "Согласовать переработки", Action: cfg.token(verbApproveOvertime)},
			}, format.BackToMain),
		}
	case verbApproveShifts:
		return Render{
			Text:    "Смены, ожидающие согласования, отсутствуют.",
			Buttons: format.BackOnly(cfg.token(verbApproval)),
		}
	case verbApproveOvertime:
		return Render{
			Text:    "Переработки, ожидающие согласования, отсутствуют.",
			Buttons: format.BackOnly(cfg.token(verbApproval)),
		}
	case verbSchedules:
		return Render{
			Text: "Графики работы:\n- Посмотреть график\n- Добавить график",
			Buttons: format.BuildMenu([]format.Button{
				{Label: "Посмотреть график", Action: cfg.token(verbViewSchedule)},
				{Label: "Добавить график", Action: cfg.token(verbAddSchedule)},
			}, format.BackToMain),
		}
	case verbViewSchedule:
		return Render{
			Text:    "График работы на текущий месяц пока не заполнен.",
			Buttons: format.BackOnly(cfg.token(verbSchedules)),
		}
	case verbAddSchedule:
		return Render{
			Text:    "Добавление графика:\n\nУкажите сотрудника, даты и время смен.",
			Buttons: format.BackOnly(cfg.token(verbSchedules)),
		}
	case verbAbsence:
		return Render{
			Text: "Планирование отсутствия:\n\nУкажите даты и причину отсутствия (отпуск, болезнь, личные обстоятельства).",
			Buttons: format.BuildMenu([]format.Button{
				{Label: "Запланировать отсутствие", Action: cfg.token(verbPlanAbsence)},
			}, format.BackToMain),
		}
	case verbPlanAbsence:
		return Render{
			Text:    "Заявка на отсутствие принята и ожидает согласования.",
			Buttons: format.BackOnly(cfg.token(verbAbsence)),
		}
	case verbCities:
		return Render{
			Text: "Управление городами:\n- Добавить город\n- Список городов",
			Buttons: format.BuildMenu([]format.Button{
				{Label: "Добавить город", Action: cfg.token(verbAddCity)},
			}, format.BackToMain),
		}
	case verbAddCity:
		return Render{
			Text:    "Добавление города:\n\nВведите название города.",
			Buttons: format.BackOnly(cfg.token(verbCities)),
		}
	case verbWarehouses:
		return Render{
			Text: "Управление складами:\n- Добавить склад\n- Список складов",
			Buttons: format.BuildMenu([]format.Button{
				{Label: "Добавить склад", Action: cfg.token(verbAddWarehouse)},
			}, format.BackToMain),
		}
	case verbAddWarehouse:
		return Render{
			Text:    "Добавление склада:\n\nУкажите название, адрес, город и контактные данные склада.",
			Buttons: format.BackOnly(cfg.token(verbWarehouses)),
		}
	case verbCompanies:
		return Render{
			Text: "Управление компаниями:\n- Добавить компанию\n- Список компаний",
			Buttons: format.BuildMenu([]format.Button{
				{Label: "Добавить компанию", Action: cfg.token(verbAddCompany)},
			}, format.BackToMain),
		}
	case verbAddCompany:
		return Render{
			Text:    "Добавление компании:\n\nУкажите реквизиты компании: наименование, ИНН, адреса и банковские данные.",
			Buttons: format.BackOnly(cfg.token(verbCompanies)),
		}
	case verbRates:
		return Render{
			Text: "Тарифы:\n- Создать тариф\n- Посмотреть тарифы",
			Buttons: format.BuildMenu([]format.Button{
				{Label: "Создать тариф", Action: cfg.token(verbCreateRate)},
				{Label: "Посмотреть тарифы", Action: cfg.token(verbViewRates)},
			}, format.BackToMain),
		}
	case verbCreateRate:
		return Render{
			Text:    "Создание тарифа:\n\nУкажите должность, ставку за час и период действия.",
			Buttons: format.BackOnly(cfg.token(verbRates)),
		}
	case verbViewRates:
		return Render{
			Text:    "Действующие тарифы пока не заданы.",
			Buttons: format.BackOnly(cfg.token(verbRates)),
		}
	case verbNotifications:
		return Render{
			Text: "Уведомления:\n- Отправить уведомление",
			Buttons: format.BuildMenu([]format.Button{
				{Label: "Отправить уведомление", Action: cfg.token(verbSendNotify)},
			}, format.BackToMain),
		}
	case verbSendNotify:
		return Render{
			Text:    "Отправка уведомления:\n\nВведите текст уведомления и выберите получателей.",
			Buttons: format.BackOnly(cfg.token(verbNotifications)),
		}
	default:
		return Render{Text: unknownText, Buttons: format.BackOnly(format.BackToMain)}
	}
}
