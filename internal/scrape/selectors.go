package scrape

// CSS selectors for GolfNow markup. Kept together so a site redesign is a
// one-file fix.
const (
	// Search results page
	facilitySelector    = ".tee-time-facility-container"
	facilityName        = ".facility-name"
	teeTimeSelector     = ".tee-time-container"
	timeSelector        = ".time"
	priceSelector       = ".price"
	holesSelector       = ".holes"
	playersSelector     = ".players"
	bookingLinkSelector = "a.book-now"

	// Detail page
	detailCourseName = ".facility-name"
	detailDateTime   = ".tee-time-date-time"
	detailPrice      = ".tee-time-price"
	detailPlayers    = ".tee-time-players"
	detailHoles      = ".tee-time-holes"
)

// extractionScript pulls every result row into plain fields inside the page,
// mirroring the selector constants above. Extraction never throws: missing
// elements become empty strings for the Go side to handle.
const extractionScript = `
	(() => {
		const clean = (s) => (s || '').replace(/\s+/g, ' ').trim();
		const out = [];
		document.querySelectorAll('.tee-time-facility-container').forEach((card) => {
			const course = clean(card.querySelector('.facility-name')?.textContent);
			card.querySelectorAll('.tee-time-container').forEach((slot) => {
				const link = slot.querySelector('a.book-now');
				out.push({
					course_name: course,
					time_text: clean(slot.querySelector('.time')?.textContent),
					price_text: clean(slot.querySelector('.price')?.textContent),
					holes_text: clean(slot.querySelector('.holes')?.textContent),
					players_text: clean(slot.querySelector('.players')?.textContent),
					booking_url: link ? link.href : ''
				});
			});
		});
		return out;
	})()
`
