package review

// SeedReports returns the initial set of submissions loaded at session start.
func SeedReports() []Report {
	return []Report{
		{ID: "r-1001", Company: "Al-Noor Contractors", CompanyAr: "شركة النور للمقاولات", Project: "Al-Anbariyah Road Widening", ProjectAr: "توسيع طريق العنبرية", Period: "2025-W26", SubmittedAt: "2025-06-29 14:12", Status: StatusPending},
		{ID: "r-1002", Company: "Quba Infra Co.", CompanyAr: "شركة قباء للبنية التحتية", Project: "Quba Stormwater Management", ProjectAr: "إدارة مياه الأمطار في قباء", Period: "2025-W25", SubmittedAt: "2025-06-22 09:41", Status: StatusApproved, Notes: "Reviewed by PMO. Budget spike acknowledged."},
		{ID: "r-1003", Company: "Haram Dev Group", CompanyAr: "مجموعة الحرم للتطوير", Project: "Al-Haramain Green Corridors", ProjectAr: "الممرات الخضراء في الحرمين", Period: "2025-Q2", SubmittedAt: "2025-06-30 18:05", Status: StatusPending},
		{ID: "r-1004", Company: "Uhud Builders", CompanyAr: "بناؤو أحد", Project: "Uhud Mountain Bridge Rehabilitation", ProjectAr: "إعادة تأهيل جبل أحد", Period: "2025-W24", SubmittedAt: "2025-06-16 11:08", Status: StatusRejected, Notes: "Missing lab test attachments."},
		{ID: "r-1005", Company: "Madinah Utilities", CompanyAr: "مرافق المدينة المنورة", Project: "Al-Awali Water Network Upgrade", ProjectAr: "ترقية شبكة المياه في العوالي", Period: "2025-W26", SubmittedAt: "2025-06-29 10:02", Status: StatusPending},
		{ID: "r-1006", Company: "Al Badr Engineering", CompanyAr: "الهندسة البدر", Project: "Al-Aziziyah Street Lighting", ProjectAr: "إنارة شوارع العزيزية", Period: "2025-W25", SubmittedAt: "2025-06-23 16:27", Status: StatusApproved, Notes: "Conforms to spec."},
		{ID: "r-1007", Company: "Qibla Roads", CompanyAr: "طرق القبلة", Project: "Al-Baqi Asphalt Resurfacing", ProjectAr: "إعادة رصف الإسفلت في البقيع", Period: "2025-W24", SubmittedAt: "2025-06-17 08:11", Status: StatusRejected, Notes: "Crew logs inconsistent."},
		{ID: "r-1008", Company: "Anwar Construction", CompanyAr: "الأنوار للإنشاءات", Project: "Al-Masjid Al-Nabawi Walkways", ProjectAr: "ممرات المسجد النبوي", Period: "2025-Q2", SubmittedAt: "2025-06-30 12:46", Status: StatusPending},
		{ID: "r-1009", Company: "Salam Builders", CompanyAr: "بناؤو السلام", Project: "Al-Rawdah Park Revitalization", ProjectAr: "إحياء حديقة الروضة", Period: "2025-W25", SubmittedAt: "2025-06-21 09:59", Status: StatusApproved, Notes: "Photos verified."},
		{ID: "r-1010", Company: "Hijaz Developments", CompanyAr: "تطويرات الحجاز", Project: "Al-Aqiq Waste Management", ProjectAr: "إدارة النفايات في العقيق", Period: "2025-W23", SubmittedAt: "2025-06-10 15:37", Status: StatusPending},
		{ID: "r-1011", Company: "Al Rawdah Group", CompanyAr: "مجموعة الروضة", Project: "Al-Haram Traffic Signal Optimization", ProjectAr: "تحسين إشارات المرور في الحرم", Period: "2025-W26", SubmittedAt: "2025-06-28 19:02", Status: StatusApproved, Notes: "Controller firmware updated."},
		{ID: "r-1012", Company: "Nakhil Infra", CompanyAr: "بنية النخيل التحتية", Project: "Al-Nakheel Canal Dredging", ProjectAr: "تجريف قناة النخيل", Period: "2025-W24", SubmittedAt: "2025-06-15 07:25", Status: StatusRejected, Notes: "Survey missing signatures."},
		{ID: "r-1013", Company: "Zamzam Services", CompanyAr: "خدمات زمزم", Project: "Al-Haram Smart Meter Installation", ProjectAr: "تركيب العدادات الذكية في الحرم", Period: "2025-Q2", SubmittedAt: "2025-06-27 20:10", Status: StatusPending},
		{ID: "r-1014", Company: "Shifa Contractors", CompanyAr: "مقاولو الشفاء", Project: "Al-Madinah Medical Center", ProjectAr: "المركز الطبي في المدينة المنورة", Period: "2025-W25", SubmittedAt: "2025-06-22 13:44", Status: StatusApproved, Notes: "All checklists complete."},
	}
}
