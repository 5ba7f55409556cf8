// =============================================================================
// CBI Payment Export - Schema Renderer
// =============================================================================
//
// This module walks a validated message and its transaction groups and
// builds the CBI payment request element tree. The document has three
// levels:
//
//   <CBIPaymentRequest xmlns:xs=... xmlns=... targetNamespace=... elementFormDefault="qualified">
//     <GrpHdr>                     <!-- one per message -->
//       <MsgId>, <CreDtTm>, <NbOfTxs>, <CtrlSum>, <InitgPty>
//     </GrpHdr>
//     <PmtInf>                     <!-- one per transaction group -->
//       <PmtInfId>, <PmtMtd>, <PmtTpInf>, <ReqdExctnDt>,
//       <Dbtr>, <DbtrAcct>, <DbtrAgt>, <ChrgBr>
//       <CdtTrfTxInf>              <!-- one per transaction in the group -->
//         <PmtId>, [<PmtTpInf>], <Amt>, [<CdtrAgt>], <Cdtr>, <CdtrAcct>, [<RmtInf>]
//       </CdtTrfTxInf>
//     </PmtInf>
//   </CBIPaymentRequest>
//
// STRUCTURAL RULES:
//   - An optional field that is absent produces no tag at all, never an
//     empty tag: InstrId, CtgyPurp, CdtrAgt, PstlAdr and RmtInf are only
//     emitted when their source value is present.
//   - Every amount renders with exactly two fractional digits and a Ccy
//     attribute.
//   - ReqdExctnDt is date-only; CreDtTm is the only timestamp and carries
//     full RFC 3339 precision.
//
// The builders are pure functions over the message data; callers reach them
// through Message.ToXML, which performs all gating before any element is
// created.
//
// =============================================================================

package sepa

import (
	"fmt"
	"strconv"
	"time"

	"github.com/treasuryops/cbi-export/internal/xmltree"
)

// renderDocument serializes the full document for a validated message.
func renderDocument(m *Message, schema Schema, now time.Time) []byte {
	root := xmltree.New(schema.RootTag)
	root.Attrs = schema.rootAttrs()

	root.Append(buildGroupHeader(m, now))

	for i, group := range GroupTransactions(m.transactions) {
		root.Append(buildPaymentInformation(m, i, group))
	}

	return xmltree.Serialize(root, xmltree.DefaultSerializeOptions())
}

// buildGroupHeader builds the GrpHdr block: message id, creation timestamp,
// header totals, and the initiating party with its optional creditor scheme
// identification.
func buildGroupHeader(m *Message, now time.Time) *xmltree.Element {
	initiatingParty := xmltree.New("InitgPty",
		xmltree.Text("Nm", m.Account.Name),
	)

	if m.Account.Scheme != nil {
		initiatingParty.Append(
			xmltree.New("Id",
				xmltree.New("OrgId",
					xmltree.New("Othr",
						xmltree.Text("Id", m.Account.Scheme.CreditorIdentifier),
						xmltree.Text("Issr", m.Account.Scheme.CreditorIssuer),
					),
				),
			),
		)
	}

	return xmltree.New("GrpHdr",
		xmltree.Text("MsgId", m.MessageIdentification),
		xmltree.Text("CreDtTm", now.Format(time.RFC3339)),
		xmltree.Text("NbOfTxs", strconv.Itoa(m.TransactionCount())),
		xmltree.Text("CtrlSum", formatAmount(m.ControlSum())),
		initiatingParty,
	)
}

// buildPaymentInformation builds one PmtInf block for a transaction group.
// The block identification is derived from the message identification and
// the group's position, so it is unique within the document.
func buildPaymentInformation(m *Message, index int, group Group) *xmltree.Element {
	paymentInfo := xmltree.New("PmtInf",
		xmltree.Text("PmtInfId", fmt.Sprintf("%s/%d", m.MessageIdentification, index+1)),
		xmltree.Text("PmtMtd", "TRA"),
		xmltree.New("PmtTpInf",
			xmltree.Text("InstrPrty", "NORM"),
			xmltree.New("SvcLvl",
				xmltree.Text("Cd", group.Key.ServiceLevel),
			),
		),
		xmltree.Text("ReqdExctnDt", group.Key.RequestedDate),
		xmltree.New("Dbtr",
			xmltree.Text("Nm", m.Account.Name),
		),
		xmltree.New("DbtrAcct",
			xmltree.New("Id",
				xmltree.Text("IBAN", m.Account.IBAN),
			),
		),
		xmltree.New("DbtrAgt",
			xmltree.New("FinInstnId",
				xmltree.New("ClrSysMmbId",
					xmltree.Text("MmbId", m.Account.NationalBankCode),
				),
			),
		),
		xmltree.Text("ChrgBr", "SLEV"),
	)

	for _, transaction := range group.Transactions {
		paymentInfo.Append(buildTransaction(transaction))
	}

	return paymentInfo
}

// buildTransaction builds one CdtTrfTxInf block.
func buildTransaction(t Transaction) *xmltree.Element {
	paymentID := xmltree.New("PmtId")
	if t.Instruction != "" {
		paymentID.Append(xmltree.Text("InstrId", t.Instruction))
	}
	paymentID.Append(xmltree.Text("EndToEndId", t.Reference))

	transaction := xmltree.New("CdtTrfTxInf", paymentID)

	if t.CategoryPurpose != "" {
		transaction.Append(
			xmltree.New("PmtTpInf",
				xmltree.New("CtgyPurp",
					xmltree.Text("Cd", t.CategoryPurpose),
				),
			),
		)
	}

	transaction.Append(
		xmltree.New("Amt",
			xmltree.Text("InstdAmt", formatAmount(t.Amount)).Attr("Ccy", t.currency()),
		),
	)

	if t.BIC != "" {
		transaction.Append(
			xmltree.New("CdtrAgt",
				xmltree.New("FinInstnId",
					xmltree.Text("BIC", t.BIC),
				),
			),
		)
	}

	creditor := xmltree.New("Cdtr",
		xmltree.Text("Nm", t.Name),
	)
	if t.City != "" {
		creditor.Append(
			xmltree.New("PstlAdr",
				xmltree.Text("TwnNm", t.City),
			),
		)
	}

	transaction.Append(
		creditor,
		xmltree.New("CdtrAcct",
			xmltree.New("Id",
				xmltree.Text("IBAN", t.IBAN),
			),
		),
	)

	if t.RemittanceInformation != "" {
		transaction.Append(
			xmltree.New("RmtInf",
				xmltree.Text("Ustrd", t.RemittanceInformation),
			),
		)
	}

	return transaction
}
