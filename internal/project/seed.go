package project

// SeedProjects returns the project catalogue.
func SeedProjects() []Project {
	return []Project{
		{
			ID: "PRJ-001", Name: "Al-Nakheel Residential Complex", NameAr: "مجمع النخيل السكني",
			Type: TypeResidential, Status: StatusInProgress, Progress: 65,
			StartDate: "2024-01-15", EndDate: "2024-12-20", Budget: "2.5M", TeamSize: 24,
			Location: "Al-Anbariyah", LocationAr: "العنبرية", Priority: PriorityHigh,
			Contractor: "Al-Bina Construction Co.", ContractorAr: "شركة البناء للإنشاءات", ContractName: "CON-2024-001",
		},
		{
			ID: "PRJ-002", Name: "King Fahd Business Center", NameAr: "مركز الملك فهد التجاري",
			Type: TypeCommercial, Status: StatusPlanning, Progress: 15,
			StartDate: "2024-03-01", EndDate: "2025-06-30", Budget: "8.2M", TeamSize: 18,
			Location: "Quba", LocationAr: "قباء", Priority: PriorityMedium,
			Contractor: "Modern Development Group", ContractorAr: "مجموعة التطوير الحديثة", ContractName: "CON-2024-015",
		},
		{
			ID: "PRJ-003", Name: "Al-Awali Industrial Zone", NameAr: "المنطقة الصناعية في العوالي",
			Type: TypeIndustrial, Status: StatusReview, Progress: 85,
			StartDate: "2023-09-10", EndDate: "2024-08-15", Budget: "15.7M", TeamSize: 32,
			Location: "Al-Awali", LocationAr: "العوالي", Priority: PriorityHigh,
			Contractor: "Industrial Builders Ltd.", ContractorAr: "شركة البنائين الصناعيين", ContractName: "CON-2023-089",
		},
		{
			ID: "PRJ-004", Name: "Al-Haramain Expressway Extension", NameAr: "امتداد طريق الحرمين السريع",
			Type: TypeInfrastructure, Status: StatusInProgress, Progress: 42,
			StartDate: "2024-02-20", EndDate: "2025-03-10", Budget: "12.3M", TeamSize: 28,
			Location: "Al-Aqiq", LocationAr: "العقيق", Priority: PriorityMedium,
			Contractor: "Port Infrastructure Solutions", ContractorAr: "حلول البنية التحتية للموانئ", ContractName: "CON-2024-032",
		},
		{
			ID: "PRJ-005", Name: "Al-Madinah University Campus", NameAr: "حرم جامعة المدينة المنورة",
			Type: TypeCommercial, Status: StatusCompleted, Progress: 100,
			StartDate: "2023-06-01", EndDate: "2024-01-15", Budget: "6.8M", TeamSize: 22,
			Location: "Al-Aziziyah", LocationAr: "العزيزية", Priority: PriorityLow,
			Contractor: "Luxury Resort Builders", ContractorAr: "بناؤو المنتجعات الفاخرة", ContractName: "CON-2023-045",
		},
		{
			ID: "PRJ-006", Name: "Al-Baqi Environmental Park", NameAr: "الحديقة البيئية في البقيع",
			Type: TypeEnvironmental, Status: StatusPlanning, Progress: 8,
			StartDate: "2024-04-01", EndDate: "2026-02-28", Budget: "9.1M", TeamSize: 16,
			Location: "Al-Baqi", LocationAr: "البقيع", Priority: PriorityMedium,
			Contractor: "Environmental Development Corp.", ContractorAr: "شركة التطوير البيئي", ContractName: "CON-2024-078",
		},
	}
}
