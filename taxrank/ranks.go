// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxrank

// ranks is the display rank of known taxa,
// from Tetraodon to eukaryotes.
// Lower ranks are drawn first.
var ranks = map[string]int{
	"Tetraodon_nigroviridis":                 0,
	"Takifugu_rubripes":                      1,
	"Tetraodontidae":                         2,
	"Oreochromis_niloticus":                  3,
	"Gasterosteus_aculeatus":                 4,
	"Oryzias_latipes":                        5,
	"Xiphophorus_maculatus":                  6,
	"Atherinomorpha":                         7,
	"Smegmamorpha":                           8,
	"Percomorpha":                            9,
	"Gadus_morhua":                           10,
	"Holacanthopterygii":                     11,
	"Danio_rerio":                            12,
	"Clupeocephala":                          13,
	"Tupaia_belangeri":                       14,
	"Cavia_porcellus":                        15,
	"Spermophilus_tridecemlineatus":          16,
	"Rattus_norvegicus":                      17,
	"Mus_musculus":                           18,
	"Murinae":                                19,
	"Dipodomys_ordii":                        20,
	"Sciurognathi":                           21,
	"Rodentia":                               22,
	"Oryctolagus_cuniculus":                  23,
	"Ochotona_princeps":                      24,
	"Lagomorpha":                             25,
	"Glires":                                 26,
	"Otolemur_garnettii":                     27,
	"Microcebus_murinus":                     28,
	"Strepsirrhini":                          29,
	"Nomascus_leucogenys":                    30,
	"Pongo_abelii":                           31,
	"Homo_sapiens":                           -3,
	"Pan_troglodytes":                        -2,
	"Gorilla_gorilla":                        -1,
	"Homininae":                              0,
	"Hominidae":                              36,
	"Hominoidea":                             37,
	"Macaca_mulatta":                         38,
	"Catarrhini":                             39,
	"Callithrix_jacchus":                     40,
	"Simiiformes":                            41,
	"Tarsius_syrichta":                       42,
	"Haplorrhini":                            43,
	"Primates":                               44,
	"Euarchontoglires":                       -3,
	"Procavia_capensis":                      46,
	"Loxodonta_africana":                     47,
	"Echinops_telfairi":                      48,
	"Afrotheria":                             49,
	"Pteropus_vampyrus":                      50,
	"Myotis_lucifugus":                       51,
	"Chiroptera":                             52,
	"Equus_caballus":                         53,
	"Vicugna_pacos":                          54,
	"Bos_taurus":                             55,
	"Sus_scrofa":                             56,
	"Tursiops_truncatus":                     57,
	"Cetartiodactyla":                        58,
	"Felis_catus":                            59,
	"Mustela_putorius_furo":                  60,
	"Ailuropoda_melanoleuca":                 61,
	"Canis_lupus_familiaris":                 62,
	"Caniformia":                             63,
	"Carnivora":                              64,
	"Sorex_araneus":                          65,
	"Erinaceus_europaeus":                    66,
	"Insectivora":                            67,
	"Laurasiatheria":                         68,
	"Dasypus_novemcinctus":                   69,
	"Choloepus_hoffmanni":                    70,
	"Xenarthra":                              71,
	"Eutheria":                               72,
	"Monodelphis_domestica":                  73,
	"Macropus_eugenii":                       74,
	"Sarcophilus_harrisii":                   75,
	"Metatheria":                             76,
	"Theria":                                 77,
	"Ornithorhynchus_anatinus":               78,
	"Mammalia":                               79,
	"Pelodiscus_sinensis":                    80,
	"Anolis_carolinensis":                    81,
	"Taeniopygia_guttata":                    82,
	"Meleagris_gallopavo":                    83,
	"Gallus_gallus":                          84,
	"Phasianidae":                            85,
	"Neognathae":                             86,
	"Sauria":                                 87,
	"Sauropsida":                             88,
	"Amniota":                                89,
	"Xenopus_tropicalis":                     90,
	"Tetrapoda":                              91,
	"Latimeria_chalumnae":                    92,
	"Sarcopterygii":                          93,
	"Euteleostomi":                           94,
	"Petromyzon_marinus":                     95,
	"Vertebrata":                             96,
	"Ciona_savignyi":                         97,
	"Ciona_intestinalis":                     98,
	"Ciona":                                  99,
	"Chordata":                               100,
	"Strongylocentrotus_purpuratus":          101,
	"Deuterostomia":                          102,
	"Lottia_gigantea":                        103,
	"Capitella_teleta":                       104,
	"Helobdella_robusta":                     105,
	"Annelida":                               106,
	"Lophotrochozoa":                         107,
	"Ixodes_scapularis":                      108,
	"Atta_cephalotes":                        109,
	"Apis_mellifera":                         110,
	"Aculeata":                               111,
	"Nasonia_vitripennis":                    112,
	"Apocrita":                               113,
	"Drosophila_virilis":                     114,
	"Drosophila_mojavensis":                  115,
	"Drosophila":                             131,
	"Drosophila_grimshawi":                   117,
	"Drosophila_willistoni":                  118,
	"Drosophila_pseudoobscura_pseudoobscura": 119,
	"Drosophila_persimilis":                  120,
	"pseudoobscura_subgroup":                 121,
	"Drosophila_yakuba":                      122,
	"Drosophila_simulans":                    123,
	"Drosophila_sechellia":                   124,
	"Drosophila_melanogaster":                125,
	"Drosophila_erecta":                      126,
	"melanogaster_subgroup":                  127,
	"Drosophila_ananassae":                   128,
	"melanogaster_group":                     129,
	"Sophophora":                             130,
	"Anopheles_darlingi":                     132,
	"Anopheles_gambiae":                      133,
	"Anopheles":                              134,
	"Culex_quinquefasciatus":                 135,
	"Aedes_aegypti":                          136,
	"Culicinae":                              137,
	"Culicidae":                              138,
	"Diptera":                                139,
	"Heliconius_melpomene":                   140,
	"Danaus_plexippus":                       141,
	"Nymphalidae":                            142,
	"Bombyx_mori":                            143,
	"Obtectomera":                            144,
	"Tribolium_castaneum":                    145,
	"Endopterygota":                          146,
	"Pediculus_humanus_corporis":             147,
	"Acyrthosiphon_pisum":                    148,
	"Paraneoptera":                           149,
	"Neoptera":                               150,
	"Daphnia_pulex":                          151,
	"Pancrustacea":                           152,
	"Arthropoda":                             153,
	"Trichinella_spiralis":                   154,
	"Pristionchus_pacificus":                 155,
	"Bursaphelenchus_xylophilus":             156,
	"Meloidogyne_hapla":                      157,
	"Tylenchida":                             158,
	"Strongyloides_ratti":                    159,
	"Heterorhabditis_bacteriophora":          160,
	"Caenorhabditis_briggsae_AF16":           161,
	"Caenorhabditis_japonica":                162,
	"Caenorhabditis_brenneri":                163,
	"Caenorhabditis_remanei":                 164,
	"Caenorhabditis_elegans":                 165,
	"Caenorhabditis":                         166,
	"Rhabditoidea":                           167,
	"Rhabditida":                             168,
	"Chromadorea":                            169,
	"Nematoda":                               170,
	"Ecdysozoa":                              171,
	"Protostomia":                            172,
	"Schistosoma_mansoni":                    173,
	"Bilateria":                              174,
	"Nematostella_vectensis":                 175,
	"Eumetazoa":                              176,
	"Amphimedon_queenslandica":               177,
	"Trichoplax_adhaerens":                   178,
	"Metazoa":                                179,
	"Saccharomyces_cerevisiae_S288c":         180,
	"Schizosaccharomyces_pombe_972h-":        181,
	"Ascomycota":                             182,
	"Proterospongia":                         183,
	"Monosiga_brevicollis":                   184,
	"Codonosigidae":                          185,
	"Opisthokonta":                           186,
	"Arabidopsis_thaliana":                   187,
	"Eukaryota":                              188,
}
