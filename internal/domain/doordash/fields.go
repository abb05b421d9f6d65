package doordash

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dtchiong/order-printer/internal/domain/order"
)

// Header line offsets in the extracted text. Line 0 carries the order
// number, line 2 the customer name and pickup clock time, line 4 the contact
// number and pickup date.
const (
	orderNumberLine  = 0
	customerNameLine = 2
	contactLine      = 4
	firstOrderLine   = 5
)

var monthNums = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

var (
	contactNumberPattern = regexp.MustCompile(`[\d\s()-]+`)
	minutePattern        = regexp.MustCompile(`\d{2}`)
)

// splitAnyKeepEmpty splits on every occurrence of any delimiter rune,
// keeping empty tokens. The pickup-time grammar indexes tokens from the end
// of the line and counts the empty token a ", " leaves behind, so collapsing
// runs would shift every position.
func splitAnyKeepEmpty(s, delims string) []string {
	out := []string{}
	start := 0
	for i, r := range s {
		if strings.ContainsRune(delims, r) {
			out = append(out, s[start:i])
			start = i + len(string(r))
		}
	}
	return append(out, s[start:])
}

// parseOrderNumber reads "Order Number: {N}".
func parseOrderNumber(line string, o *order.Order, warns *order.Warnings) {
	words := strings.Split(line, " ")
	if len(words) < 3 || words[2] == "" {
		warns.AddLine(orderNumberLine+1, "order_number", "unmatched order number line", line)
		return
	}
	o.OrderNumber = words[2]
}

// parseCustomerName reads the first two words of "{FullName} Today at {Time}".
func parseCustomerName(line string, o *order.Order, warns *order.Warnings) {
	words := strings.Split(line, " ")
	if len(words) < 2 {
		warns.AddLine(customerNameLine+1, "customer_name", "unmatched customer name line", line)
		return
	}
	o.CustomerName = words[0] + " " + words[1]
}

// parsePickUpTime combines the clock time from the name line with the date
// from the contact line:
//
//	"Bob Y Today at 09:09PM"
//	"1-(855) 973-1040 Sep 19, 2019"
//
// Token positions count from the end of each line. Failure leaves the pickup
// time zero with a diagnostic; it never aborts the order.
func parsePickUpTime(lineWithTime, lineWithDate string, o *order.Order, warns *order.Warnings) {
	timeWords := splitAnyKeepEmpty(lineWithTime, " :")
	dateWords := splitAnyKeepEmpty(lineWithDate, " ,")

	fail := func(raw string) {
		warns.AddLine(contactLine+1, "pick_up_time", "unparseable pickup time", raw)
	}

	if len(timeWords) < 2 || len(dateWords) < 4 {
		fail(lineWithTime + " / " + lineWithDate)
		return
	}

	year, err := strconv.Atoi(dateWords[len(dateWords)-1])
	if err != nil {
		fail(lineWithDate)
		return
	}
	month, ok := monthNums[dateWords[len(dateWords)-4]]
	if !ok {
		fail(lineWithDate)
		return
	}
	day, err := strconv.Atoi(dateWords[len(dateWords)-3])
	if err != nil {
		fail(lineWithDate)
		return
	}

	hour, err := strconv.Atoi(timeWords[len(timeWords)-2])
	if err != nil {
		fail(lineWithTime)
		return
	}
	minuteWord := timeWords[len(timeWords)-1]
	minuteText := minutePattern.FindString(minuteWord)
	if minuteText == "" {
		fail(lineWithTime)
		return
	}
	minute, _ := strconv.Atoi(minuteText)

	if strings.Contains(minuteWord, "PM") && hour != 12 {
		hour += 12
	}

	o.PickUpTime = time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}

// parseContactNumber pulls the phone number from the front of the contact
// line. The "Error" sentinel matches what the downstream display expects on
// a miss.
func parseContactNumber(line string, o *order.Order, warns *order.Warnings) {
	match := strings.TrimSpace(contactNumberPattern.FindString(line))
	if match == "" {
		o.ContactNumber = "Error"
		warns.AddLine(contactLine+1, "contact_number", "unmatched contact number", line)
		return
	}
	o.ContactNumber = match
}

// parseLabelName reads "Please label: {name} ({n} item)".
func parseLabelName(line string) (string, bool) {
	words := strings.Split(line, " ")
	if len(words) < 3 {
		return "", false
	}
	return words[2], true
}
