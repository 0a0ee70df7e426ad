package export

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/bodega-api/internal/application/dto"
)

// MovementsXML serializa movimientos a un documento XML indentado:
//
//	<stock_movements count="N">
//	  <movement id="...">
//	    <item_id>...</item_id>
//	    <direction>in</direction>
//	    ...
//	  </movement>
//	</stock_movements>
func MovementsXML(movements []dto.MovementDTO) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("stock_movements")
	root.CreateAttr("count", strconv.Itoa(len(movements)))

	for _, m := range movements {
		mov := root.CreateElement("movement")
		mov.CreateAttr("id", m.ID)
		mov.CreateElement("item_id").SetText(m.ItemID)
		mov.CreateElement("direction").SetText(m.Direction)
		mov.CreateElement("quantity").SetText(strconv.FormatInt(m.Quantity, 10))
		mov.CreateElement("occurred_on").SetText(m.OccurredOn)
		mov.CreateElement("recorded_at").SetText(m.RecordedAt.Format("2006-01-02T15:04:05Z07:00"))
		if m.SupplierID != nil {
			mov.CreateElement("supplier_id").SetText(*m.SupplierID)
		}
		if m.Reason != "" {
			mov.CreateElement("reason").SetText(m.Reason)
		}
		if m.Remarks != "" {
			mov.CreateElement("remarks").SetText(m.Remarks)
		}
		if m.UnitCost != nil {
			mov.CreateElement("unit_cost").SetText(m.UnitCost.String())
		}
		mov.CreateElement("recorded_by").SetText(m.RecordedBy)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml export: %w", err)
	}
	return out, nil
}
