package domain

// LineItemKey names a single row of the cash-flow statement. The enumeration
// is closed: adding a subcategory upstream means adding one constant and one
// table entry here, nowhere else.
type LineItemKey string

// Operating rows.
const (
	LineItemSalesReceipt    LineItemKey = "sales_receipt"
	LineItemServiceReceipt  LineItemKey = "service_receipt"
	LineItemSupplierPayment LineItemKey = "supplier_payment"
	LineItemPayroll         LineItemKey = "payroll"
	LineItemTaxPayment      LineItemKey = "tax_payment"
	LineItemRentPayment     LineItemKey = "rent_payment"
	LineItemUtilities       LineItemKey = "utilities_payment"
	LineItemFreight         LineItemKey = "freight_payment"
	LineItemMarketing       LineItemKey = "marketing_payment"
	LineItemBankFees        LineItemKey = "bank_fees"
	LineItemInsurance       LineItemKey = "insurance_payment"
	LineItemMaintenance     LineItemKey = "maintenance_payment"
	LineItemOtherOperating  LineItemKey = "other_operating"
)

// Investing rows.
const (
	LineItemAssetSale             LineItemKey = "asset_sale"
	LineItemInvestmentRedemption  LineItemKey = "investment_redemption"
	LineItemEquipmentPurchase     LineItemKey = "equipment_purchase"
	LineItemVehiclePurchase       LineItemKey = "vehicle_purchase"
	LineItemPropertyPurchase      LineItemKey = "property_purchase"
	LineItemInvestmentApplication LineItemKey = "investment_application"
	LineItemOtherInvesting        LineItemKey = "other_investing"
)

// Financing rows.
const (
	LineItemLoanReceived        LineItemKey = "loan_received"
	LineItemCapitalContribution LineItemKey = "capital_contribution"
	LineItemLoanRepayment       LineItemKey = "loan_repayment"
	LineItemInterestPayment     LineItemKey = "interest_payment"
	LineItemOwnerWithdrawal     LineItemKey = "owner_withdrawal"
	LineItemDividendPayment     LineItemKey = "dividend_payment"
	LineItemOtherFinancing      LineItemKey = "other_financing"
)

// Invoice rows. Inflows break down by payment method, outflows collapse
// into a single row.
const (
	LineItemBoletoReceipt   LineItemKey = "boleto_receipt"
	LineItemTransferReceipt LineItemKey = "transfer_receipt"
	LineItemPixReceipt      LineItemKey = "pix_receipt"
	LineItemOtherReceipt    LineItemKey = "other_receipts"
	LineItemInvoicePayment  LineItemKey = "invoice_payment"
)

// accountLineItems maps an account subcategory tag to its statement row.
var accountLineItems = map[string]LineItemKey{
	"SALES_RECEIPT":          LineItemSalesReceipt,
	"SERVICE_RECEIPT":        LineItemServiceReceipt,
	"SUPPLIER_PAYMENT":       LineItemSupplierPayment,
	"PAYROLL":                LineItemPayroll,
	"TAX_PAYMENT":            LineItemTaxPayment,
	"RENT_PAYMENT":           LineItemRentPayment,
	"UTILITIES_PAYMENT":      LineItemUtilities,
	"FREIGHT_PAYMENT":        LineItemFreight,
	"MARKETING_PAYMENT":      LineItemMarketing,
	"BANK_FEES":              LineItemBankFees,
	"INSURANCE_PAYMENT":      LineItemInsurance,
	"MAINTENANCE_PAYMENT":    LineItemMaintenance,
	"ASSET_SALE":             LineItemAssetSale,
	"INVESTMENT_REDEMPTION":  LineItemInvestmentRedemption,
	"EQUIPMENT_PURCHASE":     LineItemEquipmentPurchase,
	"VEHICLE_PURCHASE":       LineItemVehiclePurchase,
	"PROPERTY_PURCHASE":      LineItemPropertyPurchase,
	"INVESTMENT_APPLICATION": LineItemInvestmentApplication,
	"LOAN_RECEIVED":          LineItemLoanReceived,
	"CAPITAL_CONTRIBUTION":   LineItemCapitalContribution,
	"LOAN_REPAYMENT":         LineItemLoanRepayment,
	"INTEREST_PAYMENT":       LineItemInterestPayment,
	"OWNER_WITHDRAWAL":       LineItemOwnerWithdrawal,
	"DIVIDEND_PAYMENT":       LineItemDividendPayment,
}

// invoiceReceiptItems maps an invoice payment method to its inflow row.
var invoiceReceiptItems = map[string]LineItemKey{
	"BOLETO":   LineItemBoletoReceipt,
	"TRANSFER": LineItemTransferReceipt,
	"PIX":      LineItemPixReceipt,
}

// otherLineItem returns the catch-all row for an activity. Classification is
// total: unrecognized subcategories land here instead of failing the report.
func otherLineItem(activity ActivityCategory) LineItemKey {
	switch activity {
	case ActivityInvesting:
		return LineItemOtherInvesting
	case ActivityFinancing:
		return LineItemOtherFinancing
	default:
		return LineItemOtherOperating
	}
}
