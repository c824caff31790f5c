package constants

// Seed data for the three reference taxonomies. Ids are assigned by the
// database on insert; the slices below are ordered the way the canonical
// rows were first created, so index+1 matches the id in a freshly seeded
// store.

// BusinessLines is the canonical set of procurement business lines.
var BusinessLines = []string{
	"Construction and Public Works",
	"Information Technology and Software",
	"Office Equipment and Stationery",
	"Medical Equipment and Healthcare Services",
	"Food Supplies and Catering",
	"Transportation and Logistics",
	"Security Services",
	"Maintenance and Cleaning Services",
	"Electrical Supplies and Services",
	"Water and Sanitation Projects",
	"Agricultural Supplies and Equipment",
	"Energy and Renewable Energy",
	"Consulting and Professional Services",
	"Printing and Publishing Services",
	"Laboratory and Scientific Equipment",
	"Real Estate and Property Management",
	"Automotive Supply and Maintenance",
	"Telecommunication Services",
	"Event Management and Advertising",
	"Textiles and Uniform Supplies",
}

// Wilayas lists the 58 Algerian wilayas in official order.
var Wilayas = []string{
	"Adrar", "Chlef", "Laghouat", "Oum El Bouaghi", "Batna", "Béjaïa",
	"Biskra", "Béchar", "Blida", "Bouira", "Tamanrasset", "Tébessa",
	"Tlemcen", "Tiaret", "Tizi Ouzou", "Algiers", "Djelfa", "Jijel",
	"Sétif", "Saïda", "Skikda", "Sidi Bel Abbès", "Annaba", "Guelma",
	"Constantine", "Médéa", "Mostaganem", "M'Sila", "Mascara", "Ouargla",
	"Oran", "El Bayadh", "Illizi", "Bordj Bou Arréridj", "Boumerdès",
	"El Tarf", "Tindouf", "Tissemsilt", "El Oued", "Khenchela",
	"Souk Ahras", "Tipaza", "Mila", "Aïn Defla", "Naâma",
	"Aïn Témouchent", "Ghardaïa", "Relizane", "Timimoun",
	"Bordj Badji Mokhtar", "Ouled Djellal", "Béni Abbès", "In Salah",
	"In Guezzam", "Touggourt", "Djanet", "El M'Ghair", "El Menia",
}

// AnnouncementTypes is the canonical set of announcement kinds.
var AnnouncementTypes = []string{
	"Tender",
	"Request for Quotation (RFQ)",
	"Award Notice",
	"Prequalification Notice",
	"Cancellation Notice",
	"Recruitment Announcement",
	"Sale or Auction Notice",
	"Expression of Interest",
	"Contract Amendment",
	"General Information",
}
