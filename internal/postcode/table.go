package postcode

import "postcode-geo-service/internal/domain"

// Compiled-in reference coordinates for common Danish postal codes.
var table = map[string]Known{
	// Copenhagen area
	"1000": {Coordinates: domain.Coordinates{Lat: 55.6761, Lng: 12.5683}, City: "København K"},
	"1050": {Coordinates: domain.Coordinates{Lat: 55.6781, Lng: 12.5762}, City: "København K"},
	"1100": {Coordinates: domain.Coordinates{Lat: 55.6839, Lng: 12.5726}, City: "København K"},
	"1200": {Coordinates: domain.Coordinates{Lat: 55.6761, Lng: 12.5683}, City: "København K"},
	"1300": {Coordinates: domain.Coordinates{Lat: 55.6761, Lng: 12.5683}, City: "København K"},
	"1400": {Coordinates: domain.Coordinates{Lat: 55.6689, Lng: 12.5537}, City: "København K"},
	"1500": {Coordinates: domain.Coordinates{Lat: 55.6736, Lng: 12.5442}, City: "København V"},
	"1600": {Coordinates: domain.Coordinates{Lat: 55.6736, Lng: 12.5442}, City: "København V"},
	"1700": {Coordinates: domain.Coordinates{Lat: 55.6736, Lng: 12.5442}, City: "København V"},
	"1800": {Coordinates: domain.Coordinates{Lat: 55.6736, Lng: 12.5442}, City: "Frederiksberg C"},
	"1900": {Coordinates: domain.Coordinates{Lat: 55.6736, Lng: 12.5442}, City: "Frederiksberg C"},
	"2000": {Coordinates: domain.Coordinates{Lat: 55.6890, Lng: 12.5497}, City: "Frederiksberg"},
	"2100": {Coordinates: domain.Coordinates{Lat: 55.7126, Lng: 12.5527}, City: "København Ø"},
	"2200": {Coordinates: domain.Coordinates{Lat: 55.6938, Lng: 12.5538}, City: "København N"},
	"2300": {Coordinates: domain.Coordinates{Lat: 55.6867, Lng: 12.5890}, City: "København S"},
	"2400": {Coordinates: domain.Coordinates{Lat: 55.6647, Lng: 12.5058}, City: "København NV"},
	"2450": {Coordinates: domain.Coordinates{Lat: 55.6547, Lng: 12.5158}, City: "København SV"},
	"2500": {Coordinates: domain.Coordinates{Lat: 55.6308, Lng: 12.3567}, City: "Valby"},
	"2600": {Coordinates: domain.Coordinates{Lat: 55.6395, Lng: 12.4462}, City: "Glostrup"},
	"2605": {Coordinates: domain.Coordinates{Lat: 55.6695, Lng: 12.4062}, City: "Brøndby"},
	"2610": {Coordinates: domain.Coordinates{Lat: 55.6795, Lng: 12.4162}, City: "Rødovre"},
	"2620": {Coordinates: domain.Coordinates{Lat: 55.6495, Lng: 12.3962}, City: "Albertslund"},
	"2625": {Coordinates: domain.Coordinates{Lat: 55.6195, Lng: 12.3662}, City: "Vallensbæk"},
	"2630": {Coordinates: domain.Coordinates{Lat: 55.6295, Lng: 12.3762}, City: "Taastrup"},
	"2635": {Coordinates: domain.Coordinates{Lat: 55.6095, Lng: 12.3562}, City: "Ishøj"},
	"2640": {Coordinates: domain.Coordinates{Lat: 55.6195, Lng: 12.3662}, City: "Hedehusene"},
	"2650": {Coordinates: domain.Coordinates{Lat: 55.6536, Lng: 12.3564}, City: "Hvidovre"},
	"2660": {Coordinates: domain.Coordinates{Lat: 55.6236, Lng: 12.5064}, City: "Brøndby Strand"},
	"2670": {Coordinates: domain.Coordinates{Lat: 55.5936, Lng: 12.3264}, City: "Greve"},
	"2680": {Coordinates: domain.Coordinates{Lat: 55.5636, Lng: 12.2964}, City: "Solrød Strand"},
	"2690": {Coordinates: domain.Coordinates{Lat: 55.5336, Lng: 12.2664}, City: "Karlslunde"},
	"2700": {Coordinates: domain.Coordinates{Lat: 55.6181, Lng: 12.4824}, City: "Brønshøj"},
	"2720": {Coordinates: domain.Coordinates{Lat: 55.6269, Lng: 12.4705}, City: "Vanløse"},
	"2730": {Coordinates: domain.Coordinates{Lat: 55.7069, Lng: 12.4505}, City: "Herlev"},
	"2740": {Coordinates: domain.Coordinates{Lat: 55.7169, Lng: 12.4605}, City: "Skovlunde"},
	"2750": {Coordinates: domain.Coordinates{Lat: 55.7269, Lng: 12.4705}, City: "Ballerup"},
	"2760": {Coordinates: domain.Coordinates{Lat: 55.7369, Lng: 12.3805}, City: "Måløv"},
	"2765": {Coordinates: domain.Coordinates{Lat: 55.7469, Lng: 12.3905}, City: "Smørum"},
	"2770": {Coordinates: domain.Coordinates{Lat: 55.6569, Lng: 12.5905}, City: "Kastrup"},
	"2791": {Coordinates: domain.Coordinates{Lat: 55.6269, Lng: 12.6205}, City: "Dragør"},
	"2800": {Coordinates: domain.Coordinates{Lat: 55.7158, Lng: 12.5229}, City: "Kongens Lyngby"},
	"2820": {Coordinates: domain.Coordinates{Lat: 55.7558, Lng: 12.5029}, City: "Gentofte"},
	"2830": {Coordinates: domain.Coordinates{Lat: 55.7358, Lng: 12.4829}, City: "Virum"},
	"2840": {Coordinates: domain.Coordinates{Lat: 55.7458, Lng: 12.4629}, City: "Holte"},
	"2850": {Coordinates: domain.Coordinates{Lat: 55.7858, Lng: 12.4429}, City: "Nærum"},
	"2860": {Coordinates: domain.Coordinates{Lat: 55.7258, Lng: 12.4029}, City: "Søborg"},
	"2870": {Coordinates: domain.Coordinates{Lat: 55.7658, Lng: 12.4229}, City: "Dyssegård"},
	"2880": {Coordinates: domain.Coordinates{Lat: 55.7058, Lng: 12.3829}, City: "Bagsværd"},
	"2900": {Coordinates: domain.Coordinates{Lat: 55.7522, Lng: 12.5169}, City: "Hellerup"},
	"2920": {Coordinates: domain.Coordinates{Lat: 55.7922, Lng: 12.5569}, City: "Charlottenlund"},
	"2930": {Coordinates: domain.Coordinates{Lat: 55.8022, Lng: 12.5669}, City: "Klampenborg"},
	"2942": {Coordinates: domain.Coordinates{Lat: 55.8122, Lng: 12.5769}, City: "Skodsborg"},
	"2950": {Coordinates: domain.Coordinates{Lat: 55.8222, Lng: 12.5869}, City: "Vedbæk"},
	"2960": {Coordinates: domain.Coordinates{Lat: 55.8322, Lng: 12.5969}, City: "Rungsted Kyst"},
	"2970": {Coordinates: domain.Coordinates{Lat: 55.8422, Lng: 12.5069}, City: "Hørsholm"},
	"2980": {Coordinates: domain.Coordinates{Lat: 55.8522, Lng: 12.4169}, City: "Kokkedal"},
	"2990": {Coordinates: domain.Coordinates{Lat: 55.8622, Lng: 12.4269}, City: "Nivå"},

	// Nordsjælland (3000-3699)
	"3000": {Coordinates: domain.Coordinates{Lat: 55.7781, Lng: 12.5084}, City: "Helsingør"},
	"3050": {Coordinates: domain.Coordinates{Lat: 55.8681, Lng: 12.4584}, City: "Humlebæk"},
	"3060": {Coordinates: domain.Coordinates{Lat: 55.8781, Lng: 12.4684}, City: "Espergærde"},
	"3070": {Coordinates: domain.Coordinates{Lat: 55.8881, Lng: 12.4784}, City: "Snekkersten"},
	"3080": {Coordinates: domain.Coordinates{Lat: 55.8981, Lng: 12.4884}, City: "Tikøb"},
	"3100": {Coordinates: domain.Coordinates{Lat: 55.9081, Lng: 12.4984}, City: "Hornbæk"},
	"3120": {Coordinates: domain.Coordinates{Lat: 55.9181, Lng: 12.5084}, City: "Dronningmølle"},
	"3140": {Coordinates: domain.Coordinates{Lat: 55.9281, Lng: 12.5184}, City: "Ålsgårde"},
	"3150": {Coordinates: domain.Coordinates{Lat: 55.9381, Lng: 12.5284}, City: "Hellebæk"},
	"3200": {Coordinates: domain.Coordinates{Lat: 55.9481, Lng: 12.3384}, City: "Helsinge"},
	"3210": {Coordinates: domain.Coordinates{Lat: 55.9581, Lng: 12.3484}, City: "Vejby"},
	"3220": {Coordinates: domain.Coordinates{Lat: 55.9681, Lng: 12.3584}, City: "Tisvildeleje"},
	"3230": {Coordinates: domain.Coordinates{Lat: 55.9781, Lng: 12.3684}, City: "Græsted"},
	"3250": {Coordinates: domain.Coordinates{Lat: 55.9881, Lng: 12.3784}, City: "Gilleleje"},
	"3300": {Coordinates: domain.Coordinates{Lat: 55.8981, Lng: 12.2884}, City: "Frederiksværk"},
	"3310": {Coordinates: domain.Coordinates{Lat: 55.9081, Lng: 12.2984}, City: "Ølsted"},
	"3320": {Coordinates: domain.Coordinates{Lat: 55.9181, Lng: 12.3084}, City: "Skævinge"},
	"3330": {Coordinates: domain.Coordinates{Lat: 55.9281, Lng: 12.3184}, City: "Gørløse"},
	"3360": {Coordinates: domain.Coordinates{Lat: 55.9381, Lng: 12.3284}, City: "Liseleje"},
	"3370": {Coordinates: domain.Coordinates{Lat: 55.9481, Lng: 12.3384}, City: "Melby"},
	"3390": {Coordinates: domain.Coordinates{Lat: 55.9581, Lng: 12.3484}, City: "Hundested"},
	"3400": {Coordinates: domain.Coordinates{Lat: 55.8839, Lng: 12.4924}, City: "Hillerød"},
	"3450": {Coordinates: domain.Coordinates{Lat: 55.8339, Lng: 12.4424}, City: "Allerød"},
	"3460": {Coordinates: domain.Coordinates{Lat: 55.8439, Lng: 12.3524}, City: "Birkerød"},
	"3480": {Coordinates: domain.Coordinates{Lat: 55.8539, Lng: 12.3624}, City: "Fredensborg"},
	"3490": {Coordinates: domain.Coordinates{Lat: 55.8639, Lng: 12.3724}, City: "Kvistgård"},
	"3500": {Coordinates: domain.Coordinates{Lat: 55.8739, Lng: 12.2824}, City: "Værløse"},
	"3520": {Coordinates: domain.Coordinates{Lat: 55.8839, Lng: 12.2924}, City: "Farum"},
	"3540": {Coordinates: domain.Coordinates{Lat: 55.8939, Lng: 12.3024}, City: "Lynge"},
	"3550": {Coordinates: domain.Coordinates{Lat: 55.9039, Lng: 12.3124}, City: "Slangerup"},
	"3600": {Coordinates: domain.Coordinates{Lat: 55.7839, Lng: 12.1924}, City: "Frederikssund"},
	"3630": {Coordinates: domain.Coordinates{Lat: 55.7939, Lng: 12.2024}, City: "Jægerspris"},
	"3650": {Coordinates: domain.Coordinates{Lat: 55.8039, Lng: 12.2124}, City: "Ølstykke"},
	"3660": {Coordinates: domain.Coordinates{Lat: 55.8139, Lng: 12.2224}, City: "Stenløse"},
	"3670": {Coordinates: domain.Coordinates{Lat: 55.8239, Lng: 12.2324}, City: "Veksø Sjælland"},

	// Midt- og Vestsjælland (4000-4999)
	"4000": {Coordinates: domain.Coordinates{Lat: 55.4038, Lng: 12.1823}, City: "Roskilde"},
	"4040": {Coordinates: domain.Coordinates{Lat: 55.4538, Lng: 12.1323}, City: "Jyllinge"},
	"4050": {Coordinates: domain.Coordinates{Lat: 55.4638, Lng: 12.1423}, City: "Skibby"},
	"4060": {Coordinates: domain.Coordinates{Lat: 55.4738, Lng: 12.1523}, City: "Kirke Såby"},
	"4070": {Coordinates: domain.Coordinates{Lat: 55.4838, Lng: 12.1623}, City: "Kirke Hyllinge"},
	"4100": {Coordinates: domain.Coordinates{Lat: 55.4938, Lng: 11.7723}, City: "Ringsted"},
	"4130": {Coordinates: domain.Coordinates{Lat: 55.5038, Lng: 11.7823}, City: "Viby Sjælland"},
	"4140": {Coordinates: domain.Coordinates{Lat: 55.5138, Lng: 11.7923}, City: "Borup"},
	"4160": {Coordinates: domain.Coordinates{Lat: 55.5238, Lng: 11.8023}, City: "Herlufmagle"},
	"4171": {Coordinates: domain.Coordinates{Lat: 55.5338, Lng: 11.8123}, City: "Glumsø"},
	"4173": {Coordinates: domain.Coordinates{Lat: 55.5438, Lng: 11.8223}, City: "Fjenneslev"},
	"4174": {Coordinates: domain.Coordinates{Lat: 55.5538, Lng: 11.8323}, City: "Jystrup Midtsj"},
	"4180": {Coordinates: domain.Coordinates{Lat: 55.5638, Lng: 11.5423}, City: "Sorø"},
	"4190": {Coordinates: domain.Coordinates{Lat: 55.5738, Lng: 11.5523}, City: "Munke Bjergby"},
	"4200": {Coordinates: domain.Coordinates{Lat: 55.3838, Lng: 11.3623}, City: "Slagelse"},
	"4220": {Coordinates: domain.Coordinates{Lat: 55.3938, Lng: 11.3723}, City: "Korsør"},
	"4230": {Coordinates: domain.Coordinates{Lat: 55.4038, Lng: 11.3823}, City: "Skælskør"},
	"4241": {Coordinates: domain.Coordinates{Lat: 55.4138, Lng: 11.3923}, City: "Vemmelev"},
	"4242": {Coordinates: domain.Coordinates{Lat: 55.4238, Lng: 11.4023}, City: "Boeslunde"},
	"4243": {Coordinates: domain.Coordinates{Lat: 55.4338, Lng: 11.4123}, City: "Rude"},
	"4250": {Coordinates: domain.Coordinates{Lat: 55.4438, Lng: 11.4223}, City: "Fuglebjerg"},
	"4261": {Coordinates: domain.Coordinates{Lat: 55.4538, Lng: 11.4323}, City: "Dalmose"},
	"4262": {Coordinates: domain.Coordinates{Lat: 55.4638, Lng: 11.4423}, City: "Sandved"},
	"4270": {Coordinates: domain.Coordinates{Lat: 55.4738, Lng: 11.4523}, City: "Høng"},
	"4281": {Coordinates: domain.Coordinates{Lat: 55.4838, Lng: 11.4623}, City: "Gørlev"},
	"4291": {Coordinates: domain.Coordinates{Lat: 55.4938, Lng: 11.4723}, City: "Ruds Vedby"},
	"4293": {Coordinates: domain.Coordinates{Lat: 55.5038, Lng: 11.4823}, City: "Dianalund"},
	"4295": {Coordinates: domain.Coordinates{Lat: 55.5138, Lng: 11.4923}, City: "Stenlille"},
	"4296": {Coordinates: domain.Coordinates{Lat: 55.5238, Lng: 11.5023}, City: "Nyrup"},
	"4300": {Coordinates: domain.Coordinates{Lat: 55.6438, Lng: 11.2723}, City: "Holbæk"},
	"4320": {Coordinates: domain.Coordinates{Lat: 55.5538, Lng: 11.6823}, City: "Lejre"},
	"4330": {Coordinates: domain.Coordinates{Lat: 55.5638, Lng: 11.6923}, City: "Hvalsø"},
	"4340": {Coordinates: domain.Coordinates{Lat: 55.5738, Lng: 11.7023}, City: "Tølløse"},
	"4350": {Coordinates: domain.Coordinates{Lat: 55.5838, Lng: 11.7123}, City: "Ugerløse"},
	"4360": {Coordinates: domain.Coordinates{Lat: 55.5938, Lng: 11.7223}, City: "Kirke Eskilstrup"},
	"4370": {Coordinates: domain.Coordinates{Lat: 55.6038, Lng: 11.7323}, City: "Store Merløse"},
	"4390": {Coordinates: domain.Coordinates{Lat: 55.6138, Lng: 11.7423}, City: "Vipperød"},
	"4400": {Coordinates: domain.Coordinates{Lat: 55.7238, Lng: 11.4123}, City: "Kalundborg"},
	"4420": {Coordinates: domain.Coordinates{Lat: 55.6338, Lng: 11.3223}, City: "Regstrup"},
	"4440": {Coordinates: domain.Coordinates{Lat: 55.6438, Lng: 11.3323}, City: "Mørkøv"},
	"4450": {Coordinates: domain.Coordinates{Lat: 55.6538, Lng: 11.3423}, City: "Jyderup"},
	"4460": {Coordinates: domain.Coordinates{Lat: 55.6638, Lng: 11.3523}, City: "Snertinge"},
	"4470": {Coordinates: domain.Coordinates{Lat: 55.6738, Lng: 11.3623}, City: "Svebølle"},
	"4480": {Coordinates: domain.Coordinates{Lat: 55.6838, Lng: 11.3723}, City: "Store Fuglede"},
	"4490": {Coordinates: domain.Coordinates{Lat: 55.6938, Lng: 11.3823}, City: "Jerslev Sjælland"},
	"4500": {Coordinates: domain.Coordinates{Lat: 55.8338, Lng: 11.5923}, City: "Nykøbing Sj"},
	"4520": {Coordinates: domain.Coordinates{Lat: 55.7438, Lng: 11.5023}, City: "Svinninge"},
	"4532": {Coordinates: domain.Coordinates{Lat: 55.7538, Lng: 11.5123}, City: "Gislinge"},
	"4534": {Coordinates: domain.Coordinates{Lat: 55.7638, Lng: 11.5223}, City: "Hørve"},
	"4540": {Coordinates: domain.Coordinates{Lat: 55.7738, Lng: 11.5323}, City: "Fårevejle"},
	"4550": {Coordinates: domain.Coordinates{Lat: 55.7838, Lng: 11.5423}, City: "Asnæs"},
	"4560": {Coordinates: domain.Coordinates{Lat: 55.7938, Lng: 11.5523}, City: "Vig"},
	"4571": {Coordinates: domain.Coordinates{Lat: 55.8038, Lng: 11.5623}, City: "Grevinge"},
	"4572": {Coordinates: domain.Coordinates{Lat: 55.8138, Lng: 11.5723}, City: "Nørre Asmindrup"},
	"4573": {Coordinates: domain.Coordinates{Lat: 55.8238, Lng: 11.5823}, City: "Højby"},
	"4581": {Coordinates: domain.Coordinates{Lat: 55.8338, Lng: 11.5923}, City: "Rørvig"},
	"4583": {Coordinates: domain.Coordinates{Lat: 55.8438, Lng: 11.6023}, City: "Sjællands Odde"},
	"4591": {Coordinates: domain.Coordinates{Lat: 55.8538, Lng: 11.6123}, City: "Føllenslev"},
	"4592": {Coordinates: domain.Coordinates{Lat: 55.8638, Lng: 11.6223}, City: "Sejerø"},
	"4593": {Coordinates: domain.Coordinates{Lat: 55.8738, Lng: 11.6323}, City: "Eskebjerg"},
	"4600": {Coordinates: domain.Coordinates{Lat: 55.2738, Lng: 11.9023}, City: "Køge"},
	"4621": {Coordinates: domain.Coordinates{Lat: 55.2838, Lng: 11.9123}, City: "Gadstrup"},
	"4622": {Coordinates: domain.Coordinates{Lat: 55.2938, Lng: 11.9223}, City: "Havdrup"},
	"4623": {Coordinates: domain.Coordinates{Lat: 55.3038, Lng: 11.9323}, City: "Lille Skensved"},
	"4632": {Coordinates: domain.Coordinates{Lat: 55.3138, Lng: 11.9423}, City: "Bjæverskov"},
	"4640": {Coordinates: domain.Coordinates{Lat: 55.1738, Lng: 12.0523}, City: "Faxe"},
	"4652": {Coordinates: domain.Coordinates{Lat: 55.1838, Lng: 12.0623}, City: "Hårlev"},
	"4653": {Coordinates: domain.Coordinates{Lat: 55.1938, Lng: 12.0723}, City: "Karise"},
	"4654": {Coordinates: domain.Coordinates{Lat: 55.2038, Lng: 12.0823}, City: "Faxe Ladeplads"},
	"4660": {Coordinates: domain.Coordinates{Lat: 55.2138, Lng: 12.0923}, City: "Store Heddinge"},
	"4671": {Coordinates: domain.Coordinates{Lat: 55.2238, Lng: 12.1023}, City: "Strøby"},
	"4672": {Coordinates: domain.Coordinates{Lat: 55.2338, Lng: 12.1123}, City: "Klippinge"},
	"4673": {Coordinates: domain.Coordinates{Lat: 55.2438, Lng: 12.1223}, City: "Rødvig Stevns"},
	"4681": {Coordinates: domain.Coordinates{Lat: 55.2538, Lng: 12.1323}, City: "Herfølge"},
	"4682": {Coordinates: domain.Coordinates{Lat: 55.2638, Lng: 12.1423}, City: "Tureby"},
	"4683": {Coordinates: domain.Coordinates{Lat: 55.2738, Lng: 12.1523}, City: "Rønnede"},
	"4684": {Coordinates: domain.Coordinates{Lat: 55.2838, Lng: 12.1623}, City: "Holmegaard"},
	"4690": {Coordinates: domain.Coordinates{Lat: 55.2938, Lng: 11.8723}, City: "Haslev"},
	"4700": {Coordinates: domain.Coordinates{Lat: 55.0538, Lng: 11.7623}, City: "Næstved"},
	"4720": {Coordinates: domain.Coordinates{Lat: 54.9638, Lng: 11.8723}, City: "Præstø"},
	"4733": {Coordinates: domain.Coordinates{Lat: 54.9738, Lng: 11.8823}, City: "Tappernøje"},
	"4735": {Coordinates: domain.Coordinates{Lat: 54.9838, Lng: 11.8923}, City: "Mern"},
	"4736": {Coordinates: domain.Coordinates{Lat: 54.9938, Lng: 11.9023}, City: "Karrebæksminde"},
	"4750": {Coordinates: domain.Coordinates{Lat: 54.8338, Lng: 11.8623}, City: "Lundby"},
	"4760": {Coordinates: domain.Coordinates{Lat: 54.7638, Lng: 11.9723}, City: "Vordingborg"},
	"4771": {Coordinates: domain.Coordinates{Lat: 54.7738, Lng: 11.9823}, City: "Kalvehave"},
	"4772": {Coordinates: domain.Coordinates{Lat: 54.7838, Lng: 11.9923}, City: "Langebæk"},
	"4773": {Coordinates: domain.Coordinates{Lat: 54.7938, Lng: 12.0023}, City: "Stensved"},
	"4780": {Coordinates: domain.Coordinates{Lat: 54.8038, Lng: 12.0123}, City: "Stege"},
	"4791": {Coordinates: domain.Coordinates{Lat: 54.8138, Lng: 12.0223}, City: "Borre"},
	"4792": {Coordinates: domain.Coordinates{Lat: 54.8238, Lng: 12.0323}, City: "Askeby"},
	"4793": {Coordinates: domain.Coordinates{Lat: 54.8338, Lng: 12.0423}, City: "Bogø By"},
	"4800": {Coordinates: domain.Coordinates{Lat: 54.7738, Lng: 11.5023}, City: "Nykøbing F"},
	"4840": {Coordinates: domain.Coordinates{Lat: 54.6838, Lng: 11.3523}, City: "Nørre Alslev"},
	"4850": {Coordinates: domain.Coordinates{Lat: 54.6938, Lng: 11.3623}, City: "Stubbekøbing"},
	"4862": {Coordinates: domain.Coordinates{Lat: 54.7038, Lng: 11.3723}, City: "Guldborg"},
	"4863": {Coordinates: domain.Coordinates{Lat: 54.7138, Lng: 11.3823}, City: "Eskilstrup"},
	"4871": {Coordinates: domain.Coordinates{Lat: 54.7238, Lng: 11.3923}, City: "Horbelev"},
	"4872": {Coordinates: domain.Coordinates{Lat: 54.7338, Lng: 11.4023}, City: "Idestrup"},
	"4873": {Coordinates: domain.Coordinates{Lat: 54.7438, Lng: 11.4123}, City: "Væggerløse"},
	"4874": {Coordinates: domain.Coordinates{Lat: 54.7538, Lng: 11.4223}, City: "Gedser"},
	"4880": {Coordinates: domain.Coordinates{Lat: 54.7638, Lng: 11.4323}, City: "Nysted"},
	"4891": {Coordinates: domain.Coordinates{Lat: 54.7738, Lng: 11.4423}, City: "Toreby L"},
	"4892": {Coordinates: domain.Coordinates{Lat: 54.7838, Lng: 11.4523}, City: "Kettinge"},
	"4894": {Coordinates: domain.Coordinates{Lat: 54.7938, Lng: 11.4623}, City: "Øster Ulslev"},
	"4895": {Coordinates: domain.Coordinates{Lat: 54.8038, Lng: 11.4723}, City: "Errindlev"},
	"4900": {Coordinates: domain.Coordinates{Lat: 54.6938, Lng: 11.8623}, City: "Nakskov"},
	"4912": {Coordinates: domain.Coordinates{Lat: 54.7038, Lng: 11.8723}, City: "Harpelunde"},
	"4913": {Coordinates: domain.Coordinates{Lat: 54.7138, Lng: 11.8823}, City: "Horslunde"},
	"4920": {Coordinates: domain.Coordinates{Lat: 54.7238, Lng: 11.8923}, City: "Søllested"},
	"4930": {Coordinates: domain.Coordinates{Lat: 54.8038, Lng: 11.1423}, City: "Maribo"},
	"4941": {Coordinates: domain.Coordinates{Lat: 54.8138, Lng: 11.1523}, City: "Bandholm"},
	"4943": {Coordinates: domain.Coordinates{Lat: 54.8238, Lng: 11.1623}, City: "Torrig L"},
	"4944": {Coordinates: domain.Coordinates{Lat: 54.8338, Lng: 11.1723}, City: "Fejø"},
	"4951": {Coordinates: domain.Coordinates{Lat: 54.8438, Lng: 11.1823}, City: "Nørreballe"},
	"4952": {Coordinates: domain.Coordinates{Lat: 54.8538, Lng: 11.1923}, City: "Stokkemarke"},
	"4953": {Coordinates: domain.Coordinates{Lat: 54.8638, Lng: 11.2023}, City: "Vesterborg"},
	"4960": {Coordinates: domain.Coordinates{Lat: 54.8738, Lng: 11.2123}, City: "Holeby"},
	"4970": {Coordinates: domain.Coordinates{Lat: 54.8838, Lng: 11.2223}, City: "Rødby"},
	"4983": {Coordinates: domain.Coordinates{Lat: 54.8938, Lng: 11.2323}, City: "Dannemare"},
	"4990": {Coordinates: domain.Coordinates{Lat: 54.9038, Lng: 11.2423}, City: "Sakskøbing"},

	// Fyn (5000-5999)
	"5000": {Coordinates: domain.Coordinates{Lat: 55.3959, Lng: 10.3883}, City: "Odense C"},
	"5200": {Coordinates: domain.Coordinates{Lat: 55.4059, Lng: 10.3983}, City: "Odense V"},
	"5210": {Coordinates: domain.Coordinates{Lat: 55.4159, Lng: 10.4083}, City: "Odense NV"},
	"5220": {Coordinates: domain.Coordinates{Lat: 55.4259, Lng: 10.4183}, City: "Odense SØ"},
	"5230": {Coordinates: domain.Coordinates{Lat: 55.4359, Lng: 10.4283}, City: "Odense M"},
	"5240": {Coordinates: domain.Coordinates{Lat: 55.4459, Lng: 10.4383}, City: "Odense NØ"},
	"5250": {Coordinates: domain.Coordinates{Lat: 55.4559, Lng: 10.4483}, City: "Odense SV"},
	"5260": {Coordinates: domain.Coordinates{Lat: 55.4659, Lng: 10.4583}, City: "Odense S"},
	"5270": {Coordinates: domain.Coordinates{Lat: 55.4759, Lng: 10.4683}, City: "Odense N"},
	"5290": {Coordinates: domain.Coordinates{Lat: 55.4859, Lng: 10.4783}, City: "Marslev"},
	"5300": {Coordinates: domain.Coordinates{Lat: 55.2459, Lng: 10.4883}, City: "Kerteminde"},
	"5320": {Coordinates: domain.Coordinates{Lat: 55.2559, Lng: 10.4983}, City: "Agedrup"},
	"5330": {Coordinates: domain.Coordinates{Lat: 55.2659, Lng: 10.5083}, City: "Munkebo"},
	"5350": {Coordinates: domain.Coordinates{Lat: 55.2759, Lng: 10.5183}, City: "Rynkeby"},
	"5370": {Coordinates: domain.Coordinates{Lat: 55.2859, Lng: 10.5283}, City: "Mesinge"},
	"5380": {Coordinates: domain.Coordinates{Lat: 55.2959, Lng: 10.5383}, City: "Dalby"},
	"5390": {Coordinates: domain.Coordinates{Lat: 55.3059, Lng: 10.5483}, City: "Martofte"},
	"5400": {Coordinates: domain.Coordinates{Lat: 55.5159, Lng: 10.2483}, City: "Bogense"},
	"5450": {Coordinates: domain.Coordinates{Lat: 55.4659, Lng: 10.1983}, City: "Otterup"},
	"5462": {Coordinates: domain.Coordinates{Lat: 55.4759, Lng: 10.2083}, City: "Morud"},
	"5463": {Coordinates: domain.Coordinates{Lat: 55.4859, Lng: 10.2183}, City: "Harndrup"},
	"5464": {Coordinates: domain.Coordinates{Lat: 55.4959, Lng: 10.2283}, City: "Brenderup Fyn"},
	"5466": {Coordinates: domain.Coordinates{Lat: 55.5059, Lng: 10.2383}, City: "Asperup"},
	"5471": {Coordinates: domain.Coordinates{Lat: 55.5159, Lng: 10.2483}, City: "Søndersø"},
	"5474": {Coordinates: domain.Coordinates{Lat: 55.5259, Lng: 10.2583}, City: "Veflinge"},
	"5485": {Coordinates: domain.Coordinates{Lat: 55.5359, Lng: 10.2683}, City: "Skamby"},
}
