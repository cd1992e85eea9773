package services

import (
	"log"

	"pb-server/config"
	"pb-server/models"
)

// PackageService walks the collected trip sections and assembles the final
// package: one winning option per section, in input order. Sections with no
// usable option are dropped, never emitted as placeholders, and data-quality
// problems inside a section never abort the build.
type PackageService struct {
	selectionService *SelectionService
	scoreService     *ScoreService

	activitySelectionMode string
	maxStayActivities     int
}

// NewPackageService constructs a PackageService. activitySelectionMode is one
// of config.ACTIVITY_SELECTION_HEAD / config.ACTIVITY_SELECTION_DAYPART.
func NewPackageService(
	selectionService *SelectionService,
	scoreService *ScoreService,
	activitySelectionMode string,
	maxStayActivities int) *PackageService {

	return &PackageService{
		selectionService:      selectionService,
		scoreService:          scoreService,
		activitySelectionMode: activitySelectionMode,
		maxStayActivities:     maxStayActivities,
	}
}

// BuildPackage selects the best option per section and returns the ordered
// final layout.
func (ps *PackageService) BuildPackage(trip *models.TripResponse) *models.FinalTripLayout {
	layout := &models.FinalTripLayout{Sections: []models.FinalTripSection{}}

	for _, section := range trip.Sections {
		switch section.Type {
		case models.SECTION_FLIGHT:
			ps.appendFlightSection(layout, section.Flight)
		case models.SECTION_STAY:
			ps.appendStaySection(layout, section.Stay)
		case models.SECTION_TRANSFER:
			ps.appendTransferSection(layout, section.Transfer)
		default:
			log.Printf("[PackageService] Dropping section with unknown type %q", section.Type)
		}
	}

	return layout
}

func (ps *PackageService) appendFlightSection(layout *models.FinalTripLayout, flight *models.FlightResponse) {
	if flight == nil || len(flight.Options) == 0 {
		log.Println("[PackageService] Flight section has no options, dropping.")
		return
	}

	best := ps.selectionService.BestFlight(flight.Options)
	if best == nil {
		return
	}

	layout.Sections = append(layout.Sections, models.FinalTripSection{
		Type:   models.SECTION_FLIGHT,
		Flight: best,
	})
}

func (ps *PackageService) appendStaySection(layout *models.FinalTripLayout, stay *models.StayResponse) {
	if stay == nil {
		log.Println("[PackageService] Stay section has no data, dropping.")
		return
	}

	bestHotel := ps.selectionService.BestHotel(stay.HotelOptions)
	if bestHotel == nil || (bestHotel.ID == "" && bestHotel.Name == "") {
		log.Println("[PackageService] Stay section has no valid hotel, dropping.")
		return
	}

	layout.Sections = append(layout.Sections, models.FinalTripSection{
		Type: models.SECTION_STAY,
		Stay: &models.FinalStayOption{
			Hotel:      *bestHotel,
			Activities: ps.pickActivities(stay.ActivityOptions),
		},
	})
}

// pickActivities selects the activities bundled with a stay. Head mode takes
// the first maxStayActivities scored activities in input order; daypart mode
// picks the best activity per time-of-day bucket.
func (ps *PackageService) pickActivities(activities []models.ActivityOption) []models.ActivityOption {
	if len(activities) == 0 {
		return []models.ActivityOption{}
	}

	if ps.activitySelectionMode == config.ACTIVITY_SELECTION_DAYPART {
		winners := ps.selectionService.BestActivitiesByDaypart(activities)
		if winners == nil {
			return []models.ActivityOption{}
		}
		return winners
	}

	for i := range activities {
		if activities[i].Scores == nil {
			ps.scoreService.SetActivityScores(&activities[i])
		}
	}

	count := ps.maxStayActivities
	if count > len(activities) {
		count = len(activities)
	}
	picked := make([]models.ActivityOption, count)
	copy(picked, activities[:count])
	return picked
}

func (ps *PackageService) appendTransferSection(layout *models.FinalTripLayout, transfer *models.TransferResponse) {
	if transfer == nil || len(transfer.Options) == 0 {
		log.Println("[PackageService] Transfer section has no options, dropping.")
		return
	}

	best := ps.selectionService.BestTransfer(transfer.Options)
	if best == nil {
		return
	}

	layout.Sections = append(layout.Sections, models.FinalTripSection{
		Type:     models.SECTION_TRANSFER,
		Transfer: best,
	})
}
