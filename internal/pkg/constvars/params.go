package constvars

const (
	URLParamInstructorID = "instructor_id"
	URLParamSectionID    = "section_id"
	URLParamRoomID       = "room_id"
	URLParamCourseID     = "course_id"
)

const (
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
	URLQueryParamAsOf     = "as_of"
)
