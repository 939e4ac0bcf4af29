package i18n

import "fmt"

// Message is one UI string in both languages.
type Message struct {
	EN string
	AR string
}

var catalog = map[string]Message{
	// Review
	"review.title":       {"Project Reports Review", "مراجعة تقارير المشاريع"},
	"review.badge":       {"Moderation", "المراجعة"},
	"review.description": {"Display and moderate reports submitted by companies.", "عرض ومراجعة التقارير المقدمة من الشركات."},
	"review.search":      {"Search company, project, period...", "ابحث عن شركة، مشروع، فترة..."},
	"review.empty":       {"No reports found", "لا توجد تقارير"},
	"review.details":     {"Report Details", "تفاصيل التقرير"},
	"review.detailsHint": {"Add notes and finalize a decision.", "أضف الملاحظات واتخذ القرار النهائي."},
	"review.notesHint":   {"Add reviewer notes…", "أضف ملاحظات المراجع…"},
	"review.showing":     {"Showing %d–%d of %d", "عرض %d–%d من %d"},
	"review.prev":        {"Prev", "السابق"},
	"review.next":        {"Next", "التالي"},
	"review.hint":        {"a: approve  r: reject  enter: review  /: search  ←/→: page", "a: قبول  r: رفض  enter: مراجعة  /: بحث  ←/→: الصفحة"},
	"review.detailKeys":  {"ctrl+a: approve & close  ctrl+r: reject & close  esc: close", "ctrl+a: قبول وإغلاق  ctrl+r: رفض وإغلاق  esc: إغلاق"},
	"review.page":        {"Page %d of %d", "صفحة %d من %d"},

	// Columns
	"col.id":         {"ID", "المعرف"},
	"col.company":    {"Company", "الشركة"},
	"col.project":    {"Project", "المشروع"},
	"col.period":     {"Period", "الفترة"},
	"col.submitted":  {"Submitted", "تاريخ الإرسال"},
	"col.status":     {"Status", "الحالة"},
	"col.actions":    {"Actions", "الإجراءات"},
	"col.progress":   {"Progress", "التقدم"},
	"col.notes":      {"Notes", "ملاحظات"},
	"col.summary":    {"Summary", "الملخص"},
	"col.created":    {"Created", "تاريخ الإنشاء"},
	"col.type":       {"Type", "النوع"},
	"col.location":   {"Location", "الموقع"},
	"col.timeline":   {"Timeline", "الجدول الزمني"},
	"col.budget":     {"Budget", "الميزانية"},
	"col.team":       {"Team", "الفريق"},
	"col.contractor": {"Contractor", "المقاول"},
	"col.contract":   {"Contract", "العقد"},
	"col.priority":   {"Priority", "الأولوية"},

	// Status
	"status.pending":  {"Pending", "قيد الانتظار"},
	"status.approved": {"Approved", "مقبول"},
	"status.rejected": {"Rejected", "مرفوض"},

	// Actions
	"action.approve": {"Approve", "قبول"},
	"action.reject":  {"Reject", "رفض"},
	"action.review":  {"Review", "مراجعة"},
	"action.delete":  {"Delete", "حذف"},
	"action.clear":   {"Clear All", "مسح الكل"},
	"action.refresh": {"Refresh Status", "تحديث الحالة"},
	"action.cancel":  {"Cancel", "إلغاء"},

	// Contractor
	"contractor.title":       {"Submitted Reports", "التقارير المرسلة"},
	"contractor.description": {"View current reports and their approval status", "عرض التقارير الحالية وحالة اعتمادها"},
	"contractor.empty":       {"No reports yet", "لا توجد تقارير بعد"},
	"contractor.new":         {"Create New Report", "إنشاء تقرير جديد"},
	"contractor.newHint":     {"Submit a periodic progress update for a project", "أرسل تحديثًا دوريًا لتقدم المشروع"},
	"contractor.period":      {"Reporting Period", "الفترة التقارير"},
	"contractor.progress":    {"Progress %", "نسبة التقدم %"},
	"contractor.summary":     {"Summary", "الملخص"},
	"contractor.project":     {"Project Name", "اسم المشروع"},
	"contractor.hint":        {"n: new  d: delete  c: clear  f: refresh status", "n: جديد  d: حذف  c: مسح  f: تحديث الحالة"},
	"contractor.mock":        {"sample", "تجريبي"},
	"contractor.mockLocked":  {"Sample reports cannot be deleted", "لا يمكن حذف التقارير التجريبية"},
	"contractor.confirm":     {"Delete all your reports?", "حذف جميع تقاريرك؟"},
	"contractor.created":     {"Report submitted", "تم إرسال التقرير"},
	"contractor.deleted":     {"Report deleted", "تم حذف التقرير"},
	"contractor.cleared":     {"All reports cleared", "تم مسح جميع التقارير"},
	"contractor.refreshed":   {"%d report(s) updated", "تم تحديث %d تقرير"},
	"contractor.required":    {"This field is required", "هذا الحقل مطلوب"},
	"contractor.badProgress": {"Enter a number between 0 and 100", "أدخل رقمًا بين 0 و 100"},

	// Projects
	"project.title":               {"Project Details", "تفاصيل المشاريع"},
	"project.description":         {"Comprehensive view of all active projects", "نظرة شاملة لجميع المشاريع النشطة"},
	"project.search":              {"Search projects...", "البحث في المشاريع..."},
	"project.empty":               {"No projects match the filters", "لا توجد مشاريع مطابقة"},
	"project.count":               {"%d projects", "%d مشروع"},
	"project.filters":             {"Status: %s   Type: %s", "الحالة: %s   النوع: %s"},
	"project.hint":                {"/: search  s: status  t: type  x: reset  enter: details  ←/→: page", "/: بحث  s: الحالة  t: النوع  x: إعادة ضبط  enter: التفاصيل  ←/→: الصفحة"},
	"project.details":             {"Project Overview", "نظرة عامة على المشروع"},
	"project.allStatuses":         {"All Statuses", "جميع الحالات"},
	"project.allTypes":            {"All Types", "جميع الأنواع"},
	"project.status.planning":     {"Planning", "التخطيط"},
	"project.status.inprogress":   {"In Progress", "قيد التنفيذ"},
	"project.status.review":       {"Review", "مراجعة"},
	"project.status.completed":    {"Completed", "مكتمل"},
	"project.type.residential":    {"Residential", "سكني"},
	"project.type.commercial":     {"Commercial", "تجاري"},
	"project.type.industrial":     {"Industrial", "صناعي"},
	"project.type.infrastructure": {"Infrastructure", "بنية تحتية"},
	"project.type.environmental":  {"Environmental", "بيئي"},
	"project.priority.high":       {"High", "عالية"},
	"project.priority.medium":     {"Medium", "متوسطة"},
	"project.priority.low":        {"Low", "منخفضة"},

	// Dashboard
	"dashboard.title":      {"Overview", "نظرة عامة"},
	"dashboard.total":      {"Total Reports", "إجمالي التقارير"},
	"dashboard.rate":       {"Approval Rate", "نسبة الاعتماد"},
	"dashboard.byStatus":   {"Reports by Status", "التقارير حسب الحالة"},
	"dashboard.avgProg":    {"Avg. Contractor Progress", "متوسط تقدم المقاولين"},
	"dashboard.submitted":  {"Contractor Submissions", "تقارير المقاولين"},
	"dashboard.median":     {"Median Progress", "وسيط التقدم"},
	"dashboard.review":     {"Review Queue", "قائمة المراجعة"},
	"dashboard.projects":   {"Projects", "المشاريع"},
	"dashboard.active":     {"Active Projects", "المشاريع النشطة"},
	"dashboard.completion": {"Completion Rate", "معدل الإنجاز"},
	"dashboard.team":       {"Team Members", "أعضاء الفريق"},
	"dashboard.atRisk":     {"Deadline Risk", "مخاطر المواعيد النهائية"},

	// Tabs
	"tab.dashboard":  {"Dashboard", "لوحة التحكم"},
	"tab.review":     {"Review", "المراجعة"},
	"tab.projects":   {"Projects", "المشاريع"},
	"tab.contractor": {"Contractor", "المقاول"},
	"tab.settings":   {"Settings", "الإعدادات"},

	// Settings
	"settings.title":     {"Settings", "الإعدادات"},
	"settings.language":  {"Language", "اللغة"},
	"settings.hint":      {"Press enter to edit settings", "اضغط إدخال لتعديل الإعدادات"},
	"settings.direction": {"Text direction", "اتجاه النص"},
	"settings.saved":     {"Language set to %s", "تم تعيين اللغة إلى %s"},
	"settings.stored":    {"Stored settings", "الإعدادات المحفوظة"},

	// Export
	"export.title": {"Export Format", "صيغة التصدير"},
	"export.hint":  {"enter: export  esc: cancel", "enter: تصدير  esc: إلغاء"},
	"export.done":  {"Exported to %s", "تم التصدير إلى %s"},
	"export.error": {"Export failed: %v", "فشل التصدير: %v"},

	// App
	"app.loading":  {"Loading...", "جارٍ التحميل..."},
	"app.tooSmall": {"Terminal too small", "النافذة صغيرة جدًا"},
}

// T returns the text for key in lang. Unknown keys are returned unchanged.
func T(lang Lang, key string) string {
	m, ok := catalog[key]
	if !ok {
		return key
	}
	return Project(m.EN, m.AR, lang)
}

// Tf formats the text for key with args.
func Tf(lang Lang, key string, args ...any) string {
	return fmt.Sprintf(T(lang, key), args...)
}
