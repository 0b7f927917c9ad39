package get_day_board

import (
	"github.com/m04kA/FitStudio-SessionService/internal/domain"
	"github.com/m04kA/FitStudio-SessionService/pkg/types"
)

// generateTimeSlots генерирует сетку слотов дня от открытия до закрытия
// с фиксированным шагом. Последний слот должен целиком помещаться
// до времени закрытия
func generateTimeSlots(schedule Schedule) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)
	current := schedule.OpenTime

	for current.IsBefore(schedule.CloseTime) {
		slotEnd, err := current.AddMinutes(schedule.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(schedule.CloseTime) {
			break
		}

		slots = append(slots, current)
		current = slotEnd
	}

	return slots, nil
}

// groupBySlot группирует сессии дня по времени начала
// Сессии вне сетки (нестандартное время) прикрепляются к ближайшему
// предыдущему слоту сетки, чтобы не пропасть с доски; сессии раньше
// открытия - к первому слоту
func groupBySlot(gridSlots []types.TimeString, sessions []*domain.Session) map[types.TimeString][]*domain.Session {
	groups := make(map[types.TimeString][]*domain.Session, len(gridSlots))
	for _, slot := range gridSlots {
		groups[slot] = nil
	}
	if len(gridSlots) == 0 {
		return groups
	}

	for _, s := range sessions {
		slot := s.StartTime
		if _, ok := groups[slot]; !ok {
			slot = nearestGridSlot(gridSlots, s.StartTime)
			if slot.IsZero() {
				slot = gridSlots[0]
			}
		}
		groups[slot] = append(groups[slot], s)
	}

	return groups
}

// nearestGridSlot возвращает последний слот сетки, начинающийся не позже t
// Пустой TimeString, если t раньше первого слота
func nearestGridSlot(gridSlots []types.TimeString, t types.TimeString) types.TimeString {
	var result types.TimeString
	for _, slot := range gridSlots {
		if slot.IsAfter(t) {
			break
		}
		result = slot
	}
	return result
}
