package lunisolar

import (
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/zapponejosh/holidays-api/internal/calendar"
)

// Mongolian calendar window, in Gregorian years.
const (
	MongolianStartYear = 2004
	MongolianEndYear   = 2100
)

// Genden (Mongolian) epoch parameters.
const (
	mongolianEpochYear  = 1747
	mongolianEpochMonth = 3
	mongolianBeta       = 29
)

// ErrUnresolvable is returned when neither the regular nor the leap
// instance of the 12th month yields a New Year inside the requested year.
var ErrUnresolvable = errors.New("lunisolar: tsagaan sar cannot be resolved")

var (
	moonTab = [8]int64{0, 5, 10, 15, 19, 22, 24, 25}
	sunTab  = [4]int64{0, 6, 10, 11}
)

// Mean motion constants, per lunar month (1) and per lunar day (2).
var (
	meanDate1 = big.NewRat(167025, 5656)
	meanDate2 = new(big.Rat).Quo(meanDate1, big.NewRat(30, 1))
	meanSun1  = big.NewRat(65, 804)
	meanSun2  = new(big.Rat).Quo(meanSun1, big.NewRat(30, 1))
	anomaly1  = big.NewRat(253, 3528)
	anomaly2  = big.NewRat(1, 28)

	meanDate0 = new(big.Rat).Add(big.NewRat(2359237, 1), big.NewRat(2603, 2828))
	meanSun0  = big.NewRat(397, 402)
	anomaly0  = big.NewRat(1523, 1764)
)

// mongolianYear holds the precomputed anchors of one Gregorian year.
type mongolianYear struct {
	tsagaanSar time.Time
	err        error
	buddhaDay  time.Time
	genghis    time.Time
}

// Mongolian computes festival dates of the Mongolian lunisolar calendar
// from the Genden variant of the Tibetan Kalachakra algorithm.
type Mongolian struct {
	once  sync.Once
	years []mongolianYear
}

// NewMongolian returns a Mongolian calendar engine.
func NewMongolian() *Mongolian {
	return &Mongolian{}
}

// InRange reports whether year lies in the supported window.
func (m *Mongolian) InRange(year int) bool {
	return year >= MongolianStartYear && year <= MongolianEndYear
}

// MonthCount returns the true month count n for lunar month month of
// year. For a doubled month leap selects the first (leap) instance.
func (m *Mongolian) MonthCount(year, month int, leap bool) int {
	n, _ := monthCount(year, month)
	if leap {
		n--
	}
	return n
}

// IsLeapMonth reports whether month of year is doubled.
func (m *Mongolian) IsLeapMonth(year, month int) bool {
	_, ix := monthCount(year, month)
	return ix == 0 || ix == 1
}

func monthCount(year, month int) (n, ix int) {
	mp := 12*(year-mongolianEpochYear) + month - mongolianEpochMonth
	return divmod(67*mp+mongolianBeta, 65)
}

// TrueDate returns the true date of lunar day d of the month with true
// month count n, as a fractional Julian day.
func (m *Mongolian) TrueDate(d, n int) *big.Rat {
	rn := big.NewRat(int64(n), 1)
	rd := big.NewRat(int64(d), 1)

	mean := linear(meanDate0, meanDate1, meanDate2, rn, rd)
	sun := linear(meanSun0, meanSun1, meanSun2, rn, rd)
	anomaly := linear(anomaly0, anomaly1, anomaly2, rn, rd)

	moonEqu := interpolate(moonEquation, new(big.Rat).Mul(big.NewRat(28, 1), anomaly))
	sunArg := new(big.Rat).Sub(sun, big.NewRat(1, 4))
	sunEqu := interpolate(sunEquation, new(big.Rat).Mul(big.NewRat(12, 1), sunArg))

	sixty := big.NewRat(60, 1)
	t := new(big.Rat).Add(mean, new(big.Rat).Quo(moonEqu, sixty))
	return t.Sub(t, new(big.Rat).Quo(sunEqu, sixty))
}

// jdn returns the Julian Day Number ending lunar day d of month n.
func (m *Mongolian) jdn(d, n int) int {
	return int(floorRat(m.TrueDate(d, n)).Int64())
}

// TsagaanSar returns the Mongolian Lunar New Year, the day after the last
// day of the 12th month of the previous lunar year.
//
// A year outside the window reports absence. ErrUnresolvable is wrapped
// when no instance of the 12th month ends inside the previous year.
func (m *Mongolian) TsagaanSar(year int) (time.Time, bool, error) {
	y, ok := m.year(year)
	if !ok {
		return time.Time{}, false, nil
	}
	if y.err != nil {
		return time.Time{}, false, y.err
	}
	return y.tsagaanSar, true, nil
}

// BuddhaDay returns the 15th day of the 4th month.
func (m *Mongolian) BuddhaDay(year int) (time.Time, bool) {
	y, ok := m.year(year)
	return y.buddhaDay, ok
}

// GenghisKhanDay returns the 1st day of the 10th month.
func (m *Mongolian) GenghisKhanDay(year int) (time.Time, bool) {
	y, ok := m.year(year)
	return y.genghis, ok
}

func (m *Mongolian) year(year int) (mongolianYear, bool) {
	if !m.InRange(year) {
		return mongolianYear{}, false
	}
	m.once.Do(m.buildYears)
	return m.years[year-MongolianStartYear], true
}

func (m *Mongolian) buildYears() {
	m.years = make([]mongolianYear, MongolianEndYear-MongolianStartYear+1)
	for year := MongolianStartYear; year <= MongolianEndYear; year++ {
		y := &m.years[year-MongolianStartYear]
		y.tsagaanSar, y.err = m.resolveTsagaanSar(year)
		y.buddhaDay = calendar.JDNToGregorian(m.jdn(15, m.MonthCount(year, 4, false)))
		y.genghis = calendar.JDNToGregorian(m.jdn(30, m.MonthCount(year, 10, false)-1) + 1)
	}
}

func (m *Mongolian) resolveTsagaanSar(year int) (time.Time, error) {
	for _, leap := range []bool{false, true} {
		n := m.MonthCount(year-1, 12, leap)
		d := calendar.JDNToGregorian(m.jdn(30, n) + 1)
		if d.Year() == year {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("tsagaan sar %d: %w", year, ErrUnresolvable)
}

// linear returns c0 + n*c1 + d*c2.
func linear(c0, c1, c2, n, d *big.Rat) *big.Rat {
	r := new(big.Rat).Set(c0)
	r.Add(r, new(big.Rat).Mul(n, c1))
	return r.Add(r, new(big.Rat).Mul(d, c2))
}

// interpolate evaluates the piecewise-linear table f at x.
func interpolate(f func(int64) int64, x *big.Rat) *big.Rat {
	x0 := floorRat(x).Int64()
	frac := new(big.Rat).Sub(x, big.NewRat(x0, 1))
	lo, hi := f(x0), f(x0+1)
	r := new(big.Rat).Mul(frac, big.NewRat(hi-lo, 1))
	return r.Add(r, big.NewRat(lo, 1))
}

func moonEquation(i int64) int64 {
	i = ((i % 28) + 28) % 28
	switch {
	case i <= 7:
		return moonTab[i]
	case i <= 14:
		return moonTab[14-i]
	case i <= 21:
		return -moonTab[i-14]
	default:
		return -moonTab[28-i]
	}
}

func sunEquation(i int64) int64 {
	i = ((i % 12) + 12) % 12
	switch {
	case i <= 3:
		return sunTab[i]
	case i <= 6:
		return sunTab[6-i]
	case i <= 9:
		return -sunTab[i-6]
	default:
		return -sunTab[12-i]
	}
}

// floorRat returns the greatest integer not above r.
func floorRat(r *big.Rat) *big.Int {
	// Euclidean division rounds toward negative infinity for a positive
	// divisor, and Rat denominators are always positive.
	return new(big.Int).Div(r.Num(), r.Denom())
}

func divmod(a, b int) (int, int) {
	q, r := a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}
