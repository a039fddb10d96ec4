package observed

import "time"

const (
	mon = time.Monday
	tue = time.Tuesday
	wed = time.Wednesday
	thu = time.Thursday
	fri = time.Friday
	sat = time.Saturday
	sun = time.Sunday
)

type shifts = map[time.Weekday]int

// Single day rules.
var (
	MonToNextTue = NewRule(shifts{mon: +1})
	MonOnly      = Drop(tue, wed, thu, fri, sat, sun)

	TueToPrevMon = NewRule(shifts{tue: -1})
	TueToPrevFri = NewRule(shifts{tue: -4})
	TueToNone    = Drop(tue)

	WedToPrevMon = NewRule(shifts{wed: -2})
	WedToNextFri = NewRule(shifts{wed: +2})

	ThuToPrevMon = NewRule(shifts{thu: -3})
	ThuToPrevWed = NewRule(shifts{thu: -1})
	ThuToNextMon = NewRule(shifts{thu: +4})
	ThuToNextFri = NewRule(shifts{thu: +1})

	FriToPrevWed     = NewRule(shifts{fri: -2})
	FriToPrevThu     = NewRule(shifts{fri: -1})
	FriToNextMon     = NewRule(shifts{fri: +3})
	FriToNextTue     = NewRule(shifts{fri: +4})
	FriToNextSat     = NewRule(shifts{fri: +1})
	FriToNextWorkday = NewRule(workdayShifts(fri))
	FriOnly          = Drop(mon, tue, wed, thu, sat, sun)

	SatToPrevThu     = NewRule(shifts{sat: -2})
	SatToPrevFri     = NewRule(shifts{sat: -1})
	SatToPrevWorkday = NewRule(shifts{sat: PreviousWorkday})
	SatToNextMon     = NewRule(shifts{sat: +2})
	SatToNextTue     = NewRule(shifts{sat: +3})
	SatToNextSun     = NewRule(shifts{sat: +1})
	SatToNextWorkday = NewRule(workdayShifts(sat))
	SatToNone        = Drop(sat)

	SunToNextMon     = NewRule(shifts{sun: +1})
	SunToNextTue     = NewRule(shifts{sun: +2})
	SunToNextWed     = NewRule(shifts{sun: +3})
	SunToNextWorkday = NewRule(workdayShifts(sun))
	SunToNone        = Drop(sun)

	// SunToNextMonTue moves Sunday to Monday, or to Tuesday when Monday is
	// already a holiday.
	SunToNextMonTue = SunToNextMon.NextIfTaken()
)

// Multiple day rules.
var (
	AllToNearestMon = NewRule(shifts{tue: -1, wed: -2, thu: -3, fri: +3, sat: +2, sun: +1})
	AllToNextMon    = NewRule(shifts{tue: +6, wed: +5, thu: +4, fri: +3, sat: +2, sun: +1})
	AllToNextSun    = NewRule(shifts{mon: +6, tue: +5, wed: +4, thu: +3, fri: +2, sat: +1})

	// AllToNearestMonLatam differs from AllToNearestMon in moving Thursday forward.
	AllToNearestMonLatam = NewRule(shifts{tue: -1, wed: -2, thu: +4, fri: +3, sat: +2, sun: +1})

	WorkdayToNearestMon  = NewRule(shifts{tue: -1, wed: -2, thu: -3, fri: +3})
	WorkdayToNextMon     = NewRule(shifts{tue: +6, wed: +5, thu: +4, fri: +3})
	WorkdayToNextWorkday = NewRule(workdayShifts(mon, tue, wed, thu, fri))
	MonFriOnly           = Drop(tue, wed, thu, sat, sun)

	TueWedToPrevMon     = NewRule(shifts{tue: -1, wed: -2})
	TueWedThuToPrevMon  = NewRule(shifts{tue: -1, wed: -2, thu: -3})
	TueWedThuToNextFri  = NewRule(shifts{tue: +3, wed: +2, thu: +1})
	WedThuToNextFri     = NewRule(shifts{wed: +2, thu: +1})
	ThuFriToNextMon     = NewRule(shifts{thu: +4, fri: +3})
	ThuFriToNextWorkday = NewRule(workdayShifts(thu, fri))
	ThuFriSunToNextMon  = NewRule(shifts{thu: +4, fri: +3, sun: +1})
	FriSatToNextWorkday = NewRule(workdayShifts(fri, sat))
	FriSunToNextMon     = NewRule(shifts{fri: +3, sun: +1})
	FriSunToNextSatMon  = NewRule(shifts{fri: +1, sun: +1})

	SatSunToPrevFri     = NewRule(shifts{sat: -1, sun: -2})
	SatSunToNextMon     = NewRule(shifts{sat: +2, sun: +1})
	SatSunToNextTue     = NewRule(shifts{sat: +3, sun: +2})
	SatSunToNextWed     = NewRule(shifts{sat: +4, sun: +3})
	SatSunToNextWorkday = NewRule(workdayShifts(sat, sun))

	// SatSunToNextMonTue moves a weekend holiday to Monday, or further while
	// the target day is already a holiday.
	SatSunToNextMonTue = SatSunToNextMon.NextIfTaken()
)

func workdayShifts(weekdays ...time.Weekday) shifts {
	m := make(shifts, len(weekdays))
	for _, wd := range weekdays {
		m[wd] = NextWorkday
	}
	return m
}
