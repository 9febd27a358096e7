// Package views names the logical read views that depend on mutated data.
// Managers return the views a mutation staled; an outer layer owns the actual
// cache invalidation or page refresh.
package views

// View is an opaque view identifier.
type View string

const (
	UrbanizacionList View = "urbanization-list"
	LoteList         View = "lot-list"
	PlanList         View = "plan-list"
)

func UrbanizacionDetail(id string) View { return View("urbanization-detail:" + id) }

func UrbanizacionUpdateForm(id string) View { return View("urbanization-update-form:" + id) }

func LoteDetail(id string) View { return View("lot-detail:" + id) }

func LoteUpdateForm(id string) View { return View("lot-update-form:" + id) }

func PlanDetail(id string) View { return View("plan-detail:" + id) }
