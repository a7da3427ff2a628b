package poseidon

// Parameter tables pinned for the BN254 scalar field: width 3, x^5 S-box,
// 8 full rounds and 56 partial rounds.
//
// Round constants are nothing-up-my-sleeve numbers: SHA-256 of the domain
// tag "circuit-experiments.poseidon.bn254.t3.arc.<round>.<lane>" reduced
// modulo the field order. The MDS matrix is the Cauchy matrix 1/(x_i+y_j)
// over x=(0,1,2), y=(3,4,5). Changing any entry changes every digest;
// tests pin individual entries and a full permutation vector.

var arcHex = [64][3]string{
	{"0xb3b45223b76501940261c931454cbc39256781b4ae90db9da325675d1c18ba3", "0x17c9fb02e07b0ca52d95900e169e3c6bbc20174ae26f5f0413e829097ac56630", "0x9ed5a4b1cd866a0bdf275d30619f6d233dbad45c1636b236ac9ceb1f10602b3"},
	{"0xdcdfd63745b0f6706a6ce618bf973f1ebc41d91f53cba098232b6fedad73568", "0xb9b7ea967ae0b06601c396bc71be2818ec97b4d540ddd7d2a32f0bbf4931cd3", "0x74c673a4c88deaf268c048db4b43e90af9fc2a0ee0a5c24d3aa4d7eff0b978f"},
	{"0x1b223d32839cab04b290bef84e9fb7b3ffccb6364b648d902d39f9cb782c750d", "0x22fff5d4a50d3cd2d104454885adab54926c3680c779ab04eaf547e3ee319b4e", "0xa34930410afab3241e5e74a47d427c2a411606d8182caae052985f5f3ce4ee5"},
	{"0x27f43e5d91b651cd1b7e5a998c4ab524ac366a3994a12cafa99a2c7ec1c35b1e", "0x237a06b503f167c60a76e84ce0f3d0a8ca6096ad7cff63ed64c2e5bf688a8fe3", "0x2a9f9b4bae312a30a8e27c6fba9e747fa8288c42ca2dc342245bbb6f69d688ac"},
	{"0x2225119f788ba520c8b63a50ff9136cc6b24382fa2d41a30f8fdeeee50c00136", "0x47725bf2c09c537183ae4d2d1c7906659d6bd31799c9973edcfb5a09754e08d", "0x814711cb3590356ee3d31fbf5bd9b0b10f929a07a86e7323a94dd65a2253c60"},
	{"0x2b2ec45a847c8eaf2146d56d3ddeb08a3caeada610ffa228a726fd1005d9d613", "0x1f4635a1b161326a2743dee57612260b57e47f1e284320e1dd921b3dfebf610a", "0xa7e4c114c4714c668edc98f6b40cc227b51fe04e16b8f03040c2dab71404215"},
	{"0x13c1708c29fdbc2b9a0a50c88b655bce13789296506cf40ab9fdd8d34541b6c9", "0x21894f89ba4c20b5f29f94d23200327ae56b01ba0a69c8f037e9ec5db32f421d", "0x6de9a38216179db7f8733cd2e6c3e022fc8e463a31d600970f9d771d67deda3"},
	{"0x2e8fec16c6b5768bac8d65bb8a60021a5196397a207f11b82daae0cfa6c4be2b", "0x2f5432e984301affad6176b454d1eb5f478217d41fb76c4ceeb29eadafe05fc3", "0x35e63947669f7f41d230a52f874a346f831fb8c8baa032308a674f25fa34498"},
	{"0x2f24435e9dc1a1a553c80d9f9294070ec2e54a2180736ab455049b67a72f6e15", "0x74846d5b318408d1dd48757988995daa3b7f7cb1337069a9ed7c802ba64b429", "0x2e5370277b92b0a8dc53477436af2fdbdb361ad015d361e2f7047ad5361bc93c"},
	{"0x1daeee55ed1dc81926824c7ba41b366564b4ecd576d9478403aa47490cc3aa7a", "0x281f7e424b2eb64641a5adc26ed6b110cd40e8238ff380d83dfcdd8b95f96f0b", "0x251f31a00a435e9c78bcc93bf9edb9830ca8facb38df37096ab5085f6c20869c"},
	{"0x76cd255c0fc2ed9839200dd9e8078d84372196806f906abfa39b81fdd3536a6", "0x1fb523cef7dde81aa32975b43e52cc4c05be8a33b8fd45f6c6bef1c5ec69a5a4", "0x21c943ce40893b44e259c631ba15f58904e20b52743ede8cc8b569435da1ca18"},
	{"0x1003d6611487172da8cdf5b16815635a00cb88c6902530495cb68453dd10530e", "0x18c0a73e5c5227b11d64bb0923efcba1f1a46540633dffc502b1ac433be9d8a5", "0x1ac0bd0983c1cafb9253739c2fa586571c591b2568f1581a2aa1c4bb338a7eb9"},
	{"0xbb59d1106cc832be9badcd2982f8fb74fd1e8e1b0d31465b6e0c57faafaab22", "0x14fe6c02d3c7b2d29933bc7891b90cce350e708bd8944d4d1645669193d3ca1a", "0xb7e9e41e6bd207d7b125a66897acf62e1df59cabff6d9f46080b6eef3a797f9"},
	{"0x20327f0c180f090316dc09eb3775736f94bc3de81b5816e0cc18cbfdd568ec3", "0x8272c0e97bddb98541b0df27c57eb6a463e42c00316930b79ce75c1dfd9a06b", "0x1cfc59748d4eb6bbecd5c461be95d26dc00ee5c2805494ef5789aa867e957ed6"},
	{"0xce4538f1ab85a9c1bbe9f4998407bf5e0a5b021632690d425d0a40ef622f2bc", "0x2adde3374c900174bc786ec0836a7daed92bb2c3c3c89ce66003d8e92a897f1c", "0x60b7b62a4dab71a9950c5ef301ef00dc8c8852646b3c489069192cf416cc5a4"},
	{"0x2fe450f87bc252a40f410b98afd40396187b669a091e7c1b6fb40c8bc57dc2e8", "0x2f276b79780d1a96a7b716e87101c006bc678c35ce45f7666be5bce69571c2f2", "0x68df9021b071d79ef3fb109bbba3156b432fd2d46761561cf1df0da0ee8aa1c"},
	{"0x2cb60c9fea1269d89b0733779e1c06868e9d5d09bb153822d662ed65844bb350", "0x229673fcaea1fc201d4dc0d96b9285e2de3920b8a2a1bb9b22a20167e3e13dd5", "0xc3a05a3df0915bc0b5b99ca8c5f3dab4d896623303de6e46986102cbc3ce345"},
	{"0x2149937ad351f5fc3d5c2dd91742c5ad0bd1d28d326b25039803e5ba9877bc5d", "0x5b8fe383c519c64bdb415ce36519259180cccd73116a7379267a5465101a8", "0x2c6b56aa5975693a5a69d4f149bd84e789b7991be505b759e698fa0721c8cb25"},
	{"0x1400c1e5c6d084affec45c3eda0e87d4b265c03abdc6e6cc068261b020f0557", "0x1dadc0cd7cfa0a1af577a788df64a630bef844ad5a1996d79c1210673d42a02d", "0xb2237eb1ba89fe7c312d7a937a5027032e64626e32f2427942229ea14d0d88e"},
	{"0x18517a022e9fe3e97a103d808bc4437ab27b668f8d99607209088ccc0c747f28", "0x4092229f26a304ba0858281d0ba2d99f5da3e95c53d6862445c1c4164c481b4", "0x2c5467c2ba78dcf45c8400aedb4ac6956b55b5042d31e8bace39e6b2527a54c6"},
	{"0x2a47ff4d59dbe494200ff1850f14c1197aba36d8586af29ea874f68fb8a17f70", "0x2be5e9023c09e8a4e9361807055593564119124114d4fe13e317a7604d8a01d0", "0x2078e3e6226b688b9ab4425cb71c13f120e1b403aee2c4b2bd74d901aac383b3"},
	{"0x2df7e53f77be6778781927b1f3aeb836e3624e61a9d2f075d07727989d460f68", "0x1be9cbfb7c8d2b1193cf3c3a53195a64969ac37f65f657d334366aea7a56b3db", "0x109d6777d61779811e2b07a6d87389a109aee64ad3a1d1d5c9a3a57b205dbcb4"},
	{"0x10d0ce2fd35a4bca2fe4fdaacbaff14ca4b80725a5a78722bc65b8f988ec4a7f", "0x67041a2b48439c6632eba57fe301a6434f47208519a3b4950ab6faa6e71697c", "0x1bb74a5b9bf2cb9680d4e6364265be8798a575ff713d0e49264e6d2bfe75b0d7"},
	{"0x1d77d27936d3100b2783284f9b1c7fb2f8b962c02c94639ba0d2bdaa62a5ec20", "0x1c993b45b477f27bbbd99a1e84096c867e3403af889b6763b5225f819567a067", "0x1ac83c434c698ce0754c5e1b1586b1af81c0c39de7cb8261317d1f5a9b638ea6"},
	{"0x281152d91781a14429e56e41b0493878a794b7c36eaa27faf1a4d4fd28798a30", "0xd29eacc4f0361c55766771104d2c8b7c7e20b78cfb72dda2a2633065485a6fd", "0x24b21711ae3a798b696f5ca87a8e326c09ebae9c606f712436ef598c6a291e5a"},
	{"0x27473a8320b18639d52d2e68096563269fb2475880e46086f7c5ea8ef0e11d64", "0x230a78786af434d0110b990663fc5c4606503b83b29174532694980f07a2a471", "0x1e5a035712209ec23bb1f6f2b82c150027b0868fe199da4b150c886b44569e6"},
	{"0x230f53520d8f173065915d51174822e5eb774c78301e9a8a9b12758cd3ed0350", "0x231b5e36f4786f67566821c194ecabcdba15b3ba062595ef439248df0e0aeb12", "0x15803094dc45d7ceb01a5be07ee473bb25892436a0e708e3da87bf7658d064e9"},
	{"0x123278a1f78218336f04a1ff3ec7dd2097e69298f9a45961a7107c93a10924c6", "0x2a800907139cba679ab51d6a4a7e9c72a4f9dff9417ae2494bb9a7227abf3f09", "0xbffb7bf576e795b2e8dd21ca7d025c314187a6fed60d7162decfc4ee69d7d63"},
	{"0x14d9e26036bebb7e5e55d533114ea38eeafd416d9154471e858254902b3352a9", "0x2c94b3351c2b291ecff38960479c7616f33497ebd4e8bd5e110975ab06b5ec4d", "0x1aa2971b97f40737b7eda96112165eddefa2232935d0c17d46d687481f4764c5"},
	{"0x25b426a0a904f157c492c3b0a82069a375fbb9a81042ac70a9b949c16858554a", "0xe1bc2705dfcef7c516ad6eba837380aad589e49ca7ae6feda3d2c7245d6de0d", "0x19f355e8d4010cd8299f4016d9c855b92a13229a137a194d0c1a351da7bc92b5"},
	{"0x73945a1129bbaecc14760cde074fbf2b41be0e8246c5a2466bb129bb4991348", "0x411adeb6ac62d55efd7a98a7e77c4ede6e9e0024a3ffd112966285d258d0d77", "0x11585d478cd6d8098d70ca771d58f6e968627a514a4a19af544714896b097b39"},
	{"0xeeb463f3ca0f24e44ce74f6f20e9d3ee67f75ca78eb1658ec594fdc3bd0c397", "0x2c80a2e2bdf52188138417479c05174bf52c500bc5711ef0a3952a8a4d859f98", "0x7127fd96681de0252cd7900bf800f56ab724278bb98c3284fe16ccdf81aaf70"},
	{"0x19f6766a864057157ae36821428270f028f9ce6d6105338b3aedbca1ed0e5e", "0x268807e3dfab4b70603d7ff1e824761579e49499a9380560dbc275428aa80096", "0xe8f7d8193c8bc73fc3df7f02a84778d4cb7e7d05ce31cb701b815bc4754baa0"},
	{"0x23afb5e1a32f9ed2bc1320164580fa1182778d4048d294df59f0e78d99ef9c68", "0x2c73913ef0a899adcd735d8918d2c619004ac3d5022ebec1e5556bde3c22f9b1", "0x12f71fceb090787c99ec260e225a939f038176a76769958cf4a07460656e8d07"},
	{"0x97f52a5d3d66b1ced96180980ad5df876f408a1ebee7729264bd095111073a", "0x2b0a0b07982cded16a787285771d52e8941ade8ed16a79e2b1a1aee6e6b6bcab", "0x1f84b6f00345df995f1c94391b18c37021c316e8a79e5c12924dc8cc6f4ef028"},
	{"0x168ebf942a0771fff645bdebd670d61b61d6ef1bb561d633e3cb88542296da71", "0xf91557d37b802c91544637c9ef621cff770b1409463cd4b52944645923da1f5", "0x24889c55cafb427150ddf2723852a00f5de34c35a4b032a8ddb5be6cacf25b78"},
	{"0x12b33c808d2b8fae31c2352493ad9b9bdf6f5004c5b1498407c16a8b472eccda", "0x171785970d116f6d041bbcd20f34dea20bb10b8cefaf59767e46f8f99cdf2670", "0x2e780f8ceb8e4f5bc1c808792c61d82b211832702070becdc0e92907877f76e9"},
	{"0x25d1e6e13a452f5ecf469ea7f29f3fb6a5b634e65f0c7804c386313d4fdebc9", "0xc1e8d5bd4065bcd9c1aa8a00d2302fcd70ce461898d7afbfe89ed99be60d00b", "0x22e75d916cc8893fa71a7659855336fdd3f867681cf15c8d738134fe6de95995"},
	{"0x2d6ca191445b61b71a3fb43359c978a32a4c5a7cfdc19b4e9c78476bb2d2a2d3", "0x3a63574efe7da715ebe51f9838a2fb95034bc487a9e4d72aed267ff75d0f0b5", "0xefe382dbefa6126a19e718853f6900149a9a8b8f67d5fb702e15b9b58dd9f0e"},
	{"0x2c4844c3670bfe5156dc095b69998873b468395da9c44cb8c98d4e0c64d2cff6", "0x108354738854d259f0132b85fff6eba98ac7b835cc2bde93dec3dee7ab62c5eb", "0x28c8f80ac7fa114085f52646b1a1eab26a1ddcb8fd75d9ce22c5659c40887a4e"},
	{"0x190e3f1a2f2e3b991f9f71b53b7ece9c712b43f01d0e7b7e7becdf4ccaf1cc3f", "0x2e38ad00920fb7b9e4ce0fddf02a216869a3e93f7379566b396709de568e7244", "0x1d4474673554922846c0ae2b0ab9a8bd7603949f31e47dac0aea6c3e7ec4c7a5"},
	{"0x93a88f8706c6bd5d9d0baf4f44946c61ad41899712e8d99f220e0d8368f0c5e", "0xf88a9bbb8d36b2c47c6b580fe57b8c2e20f7be0c869360130f6725e9611e164", "0x2b4da8a81cbf735d66e11dc21c1091f7d390a52728e87f1c0deb86d2467be8b2"},
	{"0x1cf71f4a1b57d8a4745187e43964ded5eadfe47b24da2a9d1716b41fdc1d7db6", "0xdff67bd96f8319d8d42b02382624675d59632bf05435853ec06cabcb381031b", "0x2201abd86094e82a7533d6ecda9b43943d31d3ac67cfa42ae1fc8e13b9183355"},
	{"0x1c2bb522a6801cd9a8df869806182cceec41e160d8d7e499205847316a688bef", "0x9b64a31401aeb86a3ef122fce2b459dc062d80383835de54320072e2e4f6bea", "0x14165c86572cbcf202299e962d2dfcacb4f1b7a900183a2996aab46e2648bdff"},
	{"0x170834a64f3f01c5f22540472332879fee18bbe06468e3680d8c1a98b233dbe0", "0x64c0e3ac437b93cd1d6b6988023e9b3079ca57d3eadca28203b5ea0ddc96e26", "0x15ab277e3ca3bb4bcd7de99e6b20cf32bc0d3c853efc081d0ba432b7a2084c9a"},
	{"0x452a017047ed5fa930a9d2fc1dc4c627edbd80fae3db4bdab8795fbe42209ae", "0x863b08ac8f9a7b13e551107c3752a23307521a7fc86495227b5a763ec37cb73", "0x255ada9427c5b1b3dfedbbec174792daddb5a28f6d2f6f526531cc7fc2b1e326"},
	{"0xc9500c98e7b74fb424c967cb3b97ec82a2dd93a41afb1ff2dc8a44528c4b279", "0x14d2cd622a97457f660570203df48242daca5efba4237bb05e48573afe49a4c6", "0x10eecfa919a07d2a15554e7f9b79cc332c06bce6147e78137b9b5f3adc1b3d03"},
	{"0xd5da2ad78fa2c657ddcac144610e1f602cfc7ae3b27397ba84163e1506aa3a9", "0x6d9cd846c63da723df12eaf8f84ded410a8c58e22f891ea73c7634f26e82cca", "0x37437f494452f693234017605c27eb130b554915f20f36edb84e00f895b7dcf"},
	{"0x2072fab85c35b0bd802529c4ad3eff90707436d7435f777e32a84004244149ff", "0x2633a923eff4a1eb8cd6a3cef49271e7445b9c2a5166afd1825e72fa945c5eac", "0x215708d8da80804720b6975b5f4ee1c38d0a4963d97019118f3478e8207c4a48"},
	{"0x163a7bbe229df331a5f411737cc8e0f1d48abc3c23506a0b58615e18006fc80", "0x2f576e8789915257bce078abba0a838275fe7bfee9560d40d080f499c346c0cc", "0x2956e539ac79655999c8d7038f5dc2d1b62477d1b6ba5397666248d3a6200e06"},
	{"0x2fae10a34eb131054217773dba733ab91aaefd4ff6514f5b6038cb35daf43537", "0x23bb701e2f89daf1d15acf1ec55c1011c604ba2fc9dfd59f7b7a52f0b3127d84", "0x1ef1c064c3a1fcffef6ba04e63819afa7f6a098f20dd84bf4b19314f1d5d896e"},
	{"0x145fe11e3cca18bc66eb343cdcdb8f7781c23390205a6521df67b6688bb1b6e3", "0xaf48925937d0e6bbeb459828565f309ff96f6b22b2a43ee08b9de11c473b1eb", "0xc71e510aabe47e69f4b6b61e2b256b286c869880c644c4cff2a8289cdab6c75"},
	{"0xde1d943af0eaaf14a3253325729bf0304d1f5ce268060000a159cc1272bf53c", "0x4e7dfb64fb81a47a47c31544b047286c3e2b958a352e930ac50caed9a109440", "0x2c18081ecf287dc9c6dee9582bff9f4d0257627efd4ad217bd4b7b421e8a1896"},
	{"0x25a083637104be9c69ad5d34d156d374c061196db1daaff487d976d1f16468d0", "0x30582e34f9634ca20c6060fece4b4dc59901696dadde72ad3440341b4ff6061", "0x1299ec45149db2348da1b6dc207c78ab93e8988a356634399ca3a449c65dbd8"},
	{"0x2deaefb29ddb3edbf368fa8461e46a296a64c46af9ff608a677d5d1ab118da16", "0x187e6f8587344fa3e284786ac664ca542fe59da4b9f5d5e367871ce96812eba", "0x2edf543a77ebbd5d56a3a7ede741d3774724bbb93c28bfbce4372a23bd1a878b"},
	{"0x127fdb8194bcacbad4065ad02013c9d98bb3d3a39f00ead15c9b11c4d2044537", "0x2ffd4d879356ac495add3fbc3ae6e7fe03f92a1ee815bec316f7ce03daef4b43", "0x2bc97dbbee2c9b7ae2319e91fb02f93a8c2873b9c70effcceb168b2f98a7901a"},
	{"0x287773cb614ad4115a1b7a65020ab193afc61698c169003c44f77ca8ae0da2aa", "0x227bc3b6fd0f6147d453258705281893acb79a7ff08807d7dab08d98abfce5b4", "0x1ec8ea6012b331bcb8d8eee169e95bd11485c0841cd3f9b488f5b818ea419dcc"},
	{"0x295e1718985b41f6dc4179d49a145bc215df685cba7d2112c2bbbfac918a76dc", "0xb528d6962d77846445fceb50757775ca43f2e705ddb5b18503a4600e8da536", "0x2d7a903e949936d9ff2ef44b44d5e8b3645b3b8a3595a609e7b57ea7b885e93b"},
	{"0x7e38a4690b2b5aaa28e31bfeefc66a7e5c9ba31fa3c405770f2a13b06303783", "0x21840a8d25d7334ddaa81c767afe5987ba092fc95c76993f460ea1cf9b77972a", "0x4f3d37a41f59c68c2f8eead87cf20dbc8d815a20b6f1261ea5bf30472411608"},
	{"0x253945c4afc6c48b71bdae028cf8f6f4655da742d490fe9ee91ad3f8a38e0cb8", "0x1a02babb8e1c2e60bae644ab9d4a33587e29349a857481f4b09a3ee86e9e5961", "0x1c7e0934f2d7b76b1a32429f07302b11ec49e48d180d08611c9a7cf562370893"},
	{"0x95f84b651dc49723efbb8b09c3b77f0e51c43228311b68ad90be532b52df8b7", "0xb064aa38bffa0706f0e5db3074fe36ab0da9867a6ff0fe8a426ce6dbc89e9cb", "0x2cd1c55b9a65f7519be669646a1f7da4fbf96cda5bd0a9e5c6f23527389d567f"},
	{"0xe720abd457f52a74d09d5a0080552ed9a059a793148a8506c8cc700aa064393", "0x17b2fd35e42029339391204628df98555a15e9a3e1b6cb1cf677fc5528fe7f4d", "0x28c5c21a4ac4da07b6c3ac28a74069544dacd3d5f1f5b7b2a736f2b81ec20217"},
	{"0x1f1d8f68b2dbf022d4849228e4e498bfbcaf9ebfac211c54f48478a7da4d953c", "0x1168ce380828e57e30be70d3b60b73713d92335eb8df1dd073a515fdfda35f06", "0x25a548114ac3d0349cd3af22635e145f195b9cfb13d8eb832f434e50df982ad2"},
	{"0x1d02f2c4c1e4f96952a57d82a0cdc69c25448f09aae4a981a6827d85a3993913", "0x2a13d69ade6b4958817d4e2842aacd72544ebed842b9d4fd08f59b71f79d727b", "0x2ad88858ddba68b34bfde0ef3aade02dc0cfd1d6233d62bf54f07e2f4975e97"},
}

var mdsHex = [3][3]string{
	{"0x2042def740cbc01bd03583cf0100e59370229adafbd0f5b62d414e62a0000001", "0x244b3ad628e5381f4a3c3448e1210245de26ee365b4b146cf2e9782ef4000001", "0x135b52945a13d9aa49b9b57c33cd568ba9ae5ce9ca4a2d06e7f3fbd4c6666667"},
	{"0x244b3ad628e5381f4a3c3448e1210245de26ee365b4b146cf2e9782ef4000001", "0x135b52945a13d9aa49b9b57c33cd568ba9ae5ce9ca4a2d06e7f3fbd4c6666667", "0x285396b510feb022c442e4c2c1411ef84c2b4191bac53323b891a1fb48000001"},
	{"0x135b52945a13d9aa49b9b57c33cd568ba9ae5ce9ca4a2d06e7f3fbd4c6666667", "0x285396b510feb022c442e4c2c1411ef84c2b4191bac53323b891a1fb48000001", "0x6e9c21069503b73ac9dc0d0edede80d4ee2d80a5a8834a709b290cbfdb6db6e"},
}

const (
	// capacity lane values, domain separated per use
	spongeCapacityHex = "0x20000000000000000"
	merkleCapacityHex = "0x20000000000000002"
)
