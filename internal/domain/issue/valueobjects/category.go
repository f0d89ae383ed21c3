package valueobjects

type Category string

const (
	CategoryGradeDispute          Category = "GRADE_DISPUTE"
	CategoryClassSchedule         Category = "CLASS_SCHEDULE"
	CategoryFacultyConcern        Category = "FACULTY_CONCERN"
	CategoryCourseRegistration    Category = "COURSE_REGISTRATION"
	CategoryGraduationRequirement Category = "GRADUATION_REQUIREMENT"
	CategoryOther                 Category = "OTHER"
)

var validCategories = map[Category]bool{
	CategoryGradeDispute:          true,
	CategoryClassSchedule:         true,
	CategoryFacultyConcern:        true,
	CategoryCourseRegistration:    true,
	CategoryGraduationRequirement: true,
	CategoryOther:                 true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func AllCategories() []Category {
	return []Category{
		CategoryGradeDispute,
		CategoryClassSchedule,
		CategoryFacultyConcern,
		CategoryCourseRegistration,
		CategoryGraduationRequirement,
		CategoryOther,
	}
}
