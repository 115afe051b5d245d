package config

// Module identifies one gated application feature. The set is closed: the
// navigation layer composes screens from exactly these modules, and the raw
// document format accepts no others.
type Module string

const (
	ModuleDashboard     Module = "dashboard"
	ModuleCirculars     Module = "circulars"
	ModuleHomework      Module = "homework"
	ModuleAttendance    Module = "attendance"
	ModuleExams         Module = "exams"
	ModuleMarks         Module = "marks"
	ModuleFees          Module = "fees"
	ModuleCalendar      Module = "calendar"
	ModuleGallery       Module = "gallery"
	ModuleTimetable     Module = "timetable"
	ModuleChat          Module = "chat"
	ModuleProfile       Module = "profile"
	ModuleParentMessage Module = "parentMessage"
	ModuleLeaveLetter   Module = "leaveLetter"
)

// AllModules returns the closed module set in stable order.
func AllModules() []Module {
	return []Module{
		ModuleDashboard,
		ModuleCirculars,
		ModuleHomework,
		ModuleAttendance,
		ModuleExams,
		ModuleMarks,
		ModuleFees,
		ModuleCalendar,
		ModuleGallery,
		ModuleTimetable,
		ModuleChat,
		ModuleProfile,
		ModuleParentMessage,
		ModuleLeaveLetter,
	}
}

// ParseModule maps a raw document key to a Module; ok is false for keys
// outside the closed set.
func ParseModule(s string) (Module, bool) {
	switch Module(s) {
	case ModuleDashboard, ModuleCirculars, ModuleHomework, ModuleAttendance,
		ModuleExams, ModuleMarks, ModuleFees, ModuleCalendar, ModuleGallery,
		ModuleTimetable, ModuleChat, ModuleProfile, ModuleParentMessage,
		ModuleLeaveLetter:
		return Module(s), true
	default:
		return "", false
	}
}
