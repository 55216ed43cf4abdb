package catalog

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// SearchResults is the envelope returned by the searchResults endpoint.
// Only Data feeds the export; the rest is kept for logging.
type SearchResults struct {
	Success              Optional[bool]
	TotalCount           Optional[int64]
	Data                 []Course
	PageOffset           Optional[int64]
	PageMaxSize          Optional[int64]
	SectionsFetchedCount Optional[int64]
	PathMode             Optional[string]
	SearchResultsConfigs Optional[string] // raw JSON
	ZTCEncodedImage      Optional[string]
}

// Course is one scheduled registration section.
type Course struct {
	ID                             Optional[int64]
	Term                           Optional[string]
	TermDesc                       Optional[string]
	CourseReferenceNumber          Optional[string]
	PartOfTerm                     Optional[string]
	CourseNumber                   Optional[string]
	Subject                        Optional[string]
	SubjectDescription             Optional[string]
	SequenceNumber                 Optional[string]
	CampusDescription              Optional[string]
	ScheduleTypeDescription        Optional[string]
	CourseTitle                    Optional[string]
	CreditHours                    Optional[float64]
	MaximumEnrollment              Optional[int64]
	Enrollment                     Optional[int64]
	SeatsAvailable                 Optional[int64]
	WaitCapacity                   Optional[int64]
	WaitCount                      Optional[int64]
	WaitAvailable                  Optional[int64]
	CrossList                      Optional[string]
	CrossListCapacity              Optional[int64]
	CrossListCount                 Optional[int64]
	CrossListAvailable             Optional[int64]
	CreditHourHigh                 Optional[float64]
	CreditHourLow                  Optional[float64]
	CreditHourIndicator            Optional[string]
	OpenSection                    Optional[bool]
	LinkIdentifier                 Optional[string]
	IsSectionLinked                Optional[bool]
	SubjectCourse                  Optional[string]
	Faculty                        []Faculty
	MeetingsFaculty                Optional[[]Meeting]
	ReservedSeatSummary            Optional[string] // raw JSON
	SectionAttributes              Optional[[]SectionAttribute]
	InstructionalMethod            Optional[string]
	InstructionalMethodDescription Optional[string]
}

type Faculty struct {
	BannerID              Optional[string]
	Category              Optional[string]
	Class                 Optional[string]
	CourseReferenceNumber Optional[string]
	DisplayName           Optional[string]
	EmailAddress          Optional[string]
	PrimaryIndicator      Optional[bool]
	Term                  Optional[string]
}

type Meeting struct {
	Category              Optional[string]
	Class                 Optional[string]
	CourseReferenceNumber Optional[string]
	Faculty               []Faculty
	MeetingTime           Optional[MeetingTime]
	Term                  Optional[string]
}

type MeetingTime struct {
	BeginTime              Optional[string]
	Building               Optional[string]
	BuildingDescription    Optional[string]
	Campus                 Optional[string]
	CampusDescription      Optional[string]
	Category               Optional[string]
	Class                  Optional[string]
	CourseReferenceNumber  Optional[string]
	CreditHourSession      Optional[float64]
	EndDate                Optional[string]
	EndTime                Optional[string]
	HoursWeek              Optional[float64]
	MeetingScheduleType    Optional[string]
	MeetingType            Optional[string]
	MeetingTypeDescription Optional[string]
	StartDate              Optional[string]
	Room                   Optional[string]
	Term                   Optional[string]
	Sunday                 Optional[bool]
	Monday                 Optional[bool]
	Tuesday                Optional[bool]
	Wednesday              Optional[bool]
	Thursday               Optional[bool]
	Friday                 Optional[bool]
	Saturday               Optional[bool]
}

type SectionAttribute struct {
	Class                 Optional[string]
	Code                  Optional[string]
	CourseReferenceNumber Optional[string]
	Description           Optional[string]
	IsZTCAttribute        Optional[bool]
	TermCode              Optional[string]
}

// DecodeSearchResults parses a searchResults body. The body must be a JSON
// object whose data key is an array of objects; anything else is
// ErrDecode. All other fields are optional.
func DecodeSearchResults(body []byte) (SearchResults, error) {
	var result SearchResults
	if !gjson.ValidBytes(body) {
		return result, fmt.Errorf("failed to decode search results, body is not valid json %w", ErrDecode)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return result, fmt.Errorf("failed to decode search results, expected an object but have %s %w", root.Type, ErrDecode)
	}
	data := root.Get("data")
	if !data.Exists() {
		return result, fmt.Errorf("failed to decode search results, missing 'data' %w", ErrDecode)
	}
	if !data.IsArray() {
		return result, fmt.Errorf("failed to decode search results, 'data' is %s not an array %w", data.Type, ErrDecode)
	}

	envelope := Source{data: root}
	result.Success = envelope.optionalBool("success")
	result.TotalCount = envelope.optionalInt("totalCount")
	result.PageOffset = envelope.optionalInt("pageOffset")
	result.PageMaxSize = envelope.optionalInt("pageMaxSize")
	result.SectionsFetchedCount = envelope.optionalInt("sectionsFetchedCount")
	result.PathMode = envelope.optionalString("pathMode")
	result.SearchResultsConfigs = envelope.optionalRaw("searchResultsConfigs")
	result.ZTCEncodedImage = envelope.optionalString("ztcEncodedImage")

	elements := data.Array()
	result.Data = make([]Course, 0, len(elements))
	for i, v := range elements {
		if !v.IsObject() {
			return result, fmt.Errorf("failed to decode search results, data[%d] is %s not an object %w", i, v.Type, ErrDecode)
		}
		result.Data = append(result.Data, parseCourse(Source{data: v}))
	}
	return result, nil
}

func parseCourse(s Source) Course {
	c := Course{
		ID:                             s.optionalInt("id"),
		Term:                           s.optionalString("term"),
		TermDesc:                       s.optionalString("termDesc"),
		CourseReferenceNumber:          s.optionalString("courseReferenceNumber"),
		PartOfTerm:                     s.optionalString("partOfTerm"),
		CourseNumber:                   s.optionalString("courseNumber"),
		Subject:                        s.optionalString("subject"),
		SubjectDescription:             s.optionalString("subjectDescription"),
		SequenceNumber:                 s.optionalString("sequenceNumber"),
		CampusDescription:              s.optionalString("campusDescription"),
		ScheduleTypeDescription:        s.optionalString("scheduleTypeDescription"),
		CourseTitle:                    s.optionalString("courseTitle"),
		CreditHours:                    s.optionalFloat("creditHours"),
		MaximumEnrollment:              s.optionalInt("maximumEnrollment"),
		Enrollment:                     s.optionalInt("enrollment"),
		SeatsAvailable:                 s.optionalInt("seatsAvailable"),
		WaitCapacity:                   s.optionalInt("waitCapacity"),
		WaitCount:                      s.optionalInt("waitCount"),
		WaitAvailable:                  s.optionalInt("waitAvailable"),
		CrossList:                      s.optionalString("crossList"),
		CrossListCapacity:              s.optionalInt("crossListCapacity"),
		CrossListCount:                 s.optionalInt("crossListCount"),
		CrossListAvailable:             s.optionalInt("crossListAvailable"),
		CreditHourHigh:                 s.optionalFloat("creditHourHigh"),
		CreditHourLow:                  s.optionalFloat("creditHourLow"),
		CreditHourIndicator:            s.optionalString("creditHourIndicator"),
		OpenSection:                    s.optionalBool("openSection"),
		LinkIdentifier:                 s.optionalString("linkIdentifier"),
		IsSectionLinked:                s.optionalBool("isSectionLinked"),
		SubjectCourse:                  s.optionalString("subjectCourse"),
		Faculty:                        parseFacultyList(s, "faculty"),
		ReservedSeatSummary:            s.optionalRaw("reservedSeatSummary"),
		InstructionalMethod:            s.optionalString("instructionalMethod"),
		InstructionalMethodDescription: s.optionalString("instructionalMethodDescription"),
	}
	if meetings, ok := s.ObjectsForPath("meetingsFaculty"); ok {
		parsed := make([]Meeting, 0, len(meetings))
		for _, m := range meetings {
			parsed = append(parsed, parseMeeting(m))
		}
		c.MeetingsFaculty = Some(parsed)
	}
	if attributes, ok := s.ObjectsForPath("sectionAttributes"); ok {
		parsed := make([]SectionAttribute, 0, len(attributes))
		for _, a := range attributes {
			parsed = append(parsed, parseSectionAttribute(a))
		}
		c.SectionAttributes = Some(parsed)
	}
	return c
}

func parseFacultyList(s Source, path string) []Faculty {
	members, _ := s.ObjectsForPath(path)
	result := make([]Faculty, 0, len(members))
	for _, f := range members {
		result = append(result, Faculty{
			BannerID:              f.optionalString("bannerId"),
			Category:              f.optionalString("category"),
			Class:                 f.optionalString("class"),
			CourseReferenceNumber: f.optionalString("courseReferenceNumber"),
			DisplayName:           f.optionalString("displayName"),
			EmailAddress:          f.optionalString("emailAddress"),
			PrimaryIndicator:      f.optionalBool("primaryIndicator"),
			Term:                  f.optionalString("term"),
		})
	}
	return result
}

func parseMeeting(s Source) Meeting {
	m := Meeting{
		Category:              s.optionalString("category"),
		Class:                 s.optionalString("class"),
		CourseReferenceNumber: s.optionalString("courseReferenceNumber"),
		Faculty:               parseFacultyList(s, "faculty"),
		Term:                  s.optionalString("term"),
	}
	if t, ok := s.ObjectForPath("meetingTime"); ok {
		m.MeetingTime = Some(MeetingTime{
			BeginTime:              t.optionalString("beginTime"),
			Building:               t.optionalString("building"),
			BuildingDescription:    t.optionalString("buildingDescription"),
			Campus:                 t.optionalString("campus"),
			CampusDescription:      t.optionalString("campusDescription"),
			Category:               t.optionalString("category"),
			Class:                  t.optionalString("class"),
			CourseReferenceNumber:  t.optionalString("courseReferenceNumber"),
			CreditHourSession:      t.optionalFloat("creditHourSession"),
			EndDate:                t.optionalString("endDate"),
			EndTime:                t.optionalString("endTime"),
			HoursWeek:              t.optionalFloat("hoursWeek"),
			MeetingScheduleType:    t.optionalString("meetingScheduleType"),
			MeetingType:            t.optionalString("meetingType"),
			MeetingTypeDescription: t.optionalString("meetingTypeDescription"),
			StartDate:              t.optionalString("startDate"),
			Room:                   t.optionalString("room"),
			Term:                   t.optionalString("term"),
			Sunday:                 t.optionalBool("sunday"),
			Monday:                 t.optionalBool("monday"),
			Tuesday:                t.optionalBool("tuesday"),
			Wednesday:              t.optionalBool("wednesday"),
			Thursday:               t.optionalBool("thursday"),
			Friday:                 t.optionalBool("friday"),
			Saturday:               t.optionalBool("saturday"),
		})
	}
	return m
}

func parseSectionAttribute(s Source) SectionAttribute {
	return SectionAttribute{
		Class:                 s.optionalString("class"),
		Code:                  s.optionalString("code"),
		CourseReferenceNumber: s.optionalString("courseReferenceNumber"),
		Description:           s.optionalString("description"),
		IsZTCAttribute:        s.optionalBool("isZTCAttribute"),
		TermCode:              s.optionalString("termCode"),
	}
}
