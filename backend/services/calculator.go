package services

// Overall progress weights. Guide counts fully as soon as one section is bookmarked.
const (
	MiniCourseWeight = 40
	WebinarWeight    = 40
	GuideWeight      = 20
)

// Percentage returns round(100*completed/total), rounding halves up, within [0,100].
// A non-positive total yields 0.
func Percentage(completed, total int) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	if completed >= total {
		return 100
	}
	return (200*completed + total) / (2 * total)
}

// Overall combines course progress and guide usage into one rounded percentage.
func Overall(miniCourse, webinar CourseProgress, bookmarks int64) int {
	// Sum weight*completed/total as a single fraction num/den, then round half up.
	num, den := 0, 1
	add := func(weight, completed, total int) {
		if total <= 0 {
			return
		}
		completed = clamp(completed, 0, total)
		num = num*total + weight*completed*den
		den *= total
	}
	add(MiniCourseWeight, miniCourse.CompletedCount, miniCourse.TotalCount)
	add(WebinarWeight, webinar.CompletedCount, webinar.TotalCount)
	if bookmarks > 0 {
		num += GuideWeight * den
	}

	return clamp((2*num+den)/(2*den), 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
