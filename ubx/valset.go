package ubx

import "sort"

// valKey is one entry in the receiver's configuration-interface key
// database: a human-readable dotted name (CFG- prefix stripped), its
// 32-bit key identifier, and the wire type of its value.
type valKey struct {
	Name string
	ID   uint32
	Type FieldType
}

// valKeys is the VALSET/VALGET/VALDEL key catalogue, sourced from the
// receiver's configuration-interface database. Kept sorted by name so
// lookupValKey can binary search it; duplicate names in the source
// database collapse to their first occurrence.
var valKeys = []valKey{
	{"GEOFENCE-CONFLVL", 0x20240011, FU1},
	{"GEOFENCE-FENCE1_LAT", 0x40240021, FI4},
	{"GEOFENCE-FENCE1_LON", 0x40240022, FI4},
	{"GEOFENCE-FENCE1_RAD", 0x40240023, FU4},
	{"GEOFENCE-FENCE2_LAT", 0x40240031, FI4},
	{"GEOFENCE-FENCE2_LON", 0x40240032, FI4},
	{"GEOFENCE-FENCE2_RAD", 0x40240033, FU4},
	{"GEOFENCE-FENCE3_LAT", 0x40240041, FI4},
	{"GEOFENCE-FENCE3_LON", 0x40240042, FI4},
	{"GEOFENCE-FENCE3_RAD", 0x40240043, FU4},
	{"GEOFENCE-FENCE4_LAT", 0x40240051, FI4},
	{"GEOFENCE-FENCE4_LON", 0x40240052, FI4},
	{"GEOFENCE-FENCE4_RAD", 0x40240053, FU4},
	{"GEOFENCE-PIN", 0x20240014, FU1},
	{"GEOFENCE-PINPOL", 0x20240013, FU1},
	{"GEOFENCE-USE_FENCE1", 0x10240020, FU1},
	{"GEOFENCE-USE_FENCE2", 0x10240030, FU1},
	{"GEOFENCE-USE_FENCE3", 0x10240040, FU1},
	{"GEOFENCE-USE_FENCE4", 0x10240050, FU1},
	{"GEOFENCE-USE_PIO", 0x10240012, FU1},
	{"HW-ANT_CFG_OPENDET", 0x10a30031, FU1},
	{"HW-ANT_CFG_OPENDET_POL", 0x10a30032, FU1},
	{"HW-ANT_CFG_PWRDOWN", 0x10a30033, FU1},
	{"HW-ANT_CFG_PWRDOWN_POL", 0x10a30034, FU1},
	{"HW-ANT_CFG_RECOVER", 0x10a30035, FU1},
	{"HW-ANT_CFG_SHORTDET", 0x10a3002f, FU1},
	{"HW-ANT_CFG_SHORTDET_POL", 0x10a30030, FU1},
	{"HW-ANT_CFG_VOLTCTRL", 0x10a3002e, FU1},
	{"HW-ANT_SUP_OPEN_PIN", 0x20a30038, FU1},
	{"HW-ANT_SUP_SHORT_PIN", 0x20a30037, FU1},
	{"HW-ANT_SUP_SWITCH_PIN", 0x20a30036, FU1},
	{"I2C-ADDRESS", 0x20510001, FU1},
	{"I2C-ENABLED", 0x10510003, FU1},
	{"I2C-EXTENDEDTIMEOUT", 0x10510002, FU1},
	{"I2CINPROT-NMEA", 0x10710002, FU1},
	{"I2CINPROT-RTCM2X", 0x10710003, FU1},
	{"I2CINPROT-RTCM3X", 0x10710004, FU1},
	{"I2CINPROT-UBX", 0x10710001, FU1},
	{"I2COUTPROT-NMEA", 0x10720002, FU1},
	{"I2COUTPROT-RTCM3X", 0x10720004, FU1},
	{"I2COUTPROT-UBX", 0x10720001, FU1},
	{"INFMSG-NMEA_I2C", 0x20920006, FU1},
	{"INFMSG-NMEA_SPI", 0x2092000a, FU1},
	{"INFMSG-NMEA_UART1", 0x20920007, FU1},
	{"INFMSG-NMEA_UART2", 0x20920008, FU1},
	{"INFMSG-NMEA_USB", 0x20920009, FU1},
	{"INFMSG-UBX_I2C", 0x20920001, FU1},
	{"INFMSG-UBX_SPI", 0x20920005, FU1},
	{"INFMSG-UBX_UART1", 0x20920002, FU1},
	{"INFMSG-UBX_UART2", 0x20920003, FU1},
	{"INFMSG-UBX_USB", 0x20920004, FU1},
	{"ITFM-ANTSETTING", 0x20410010, FU1},
	{"ITFM-BBTHRESHOLD", 0x20410001, FU1},
	{"ITFM-CWTHRESHOLD", 0x20410002, FU1},
	{"ITFM-ENABLE", 0x1041000d, FU1},
	{"ITFM-ENABLE_AUX", 0x10410013, FU1},
	{"LOGFILTER-APPLY_ALL_FILTERS", 0x10de0004, FU1},
	{"LOGFILTER-MIN_INTERVAL", 0x30de0005, FU2},
	{"LOGFILTER-ONCE_PER_WAKE_UP_ENA", 0x10de0003, FU1},
	{"LOGFILTER-POSITION_THRS", 0x40de0008, FU4},
	{"LOGFILTER-RECORD_ENA", 0x10de0002, FU1},
	{"LOGFILTER-SPEED_THRS", 0x30de0007, FU2},
	{"LOGFILTER-TIME_THRS", 0x30de0006, FU2},
	{"MOT-GNSSDIST_THRS", 0x3025003b, FU2},
	{"MOT-GNSSSPEED_THRS", 0x20250038, FU1},
	{"MSGOUT-NMEA_ID_DTM_I2C", 0x209100a6, FU1},
	{"MSGOUT-NMEA_ID_DTM_SPI", 0x209100aa, FU1},
	{"MSGOUT-NMEA_ID_DTM_UART1", 0x209100a7, FU1},
	{"MSGOUT-NMEA_ID_DTM_UART2", 0x209100a8, FU1},
	{"MSGOUT-NMEA_ID_DTM_USB", 0x209100a9, FU1},
	{"MSGOUT-NMEA_ID_GBS_I2C", 0x209100dd, FU1},
	{"MSGOUT-NMEA_ID_GBS_SPI", 0x209100e1, FU1},
	{"MSGOUT-NMEA_ID_GBS_UART1", 0x209100de, FU1},
	{"MSGOUT-NMEA_ID_GBS_UART2", 0x209100df, FU1},
	{"MSGOUT-NMEA_ID_GBS_USB", 0x209100e0, FU1},
	{"MSGOUT-NMEA_ID_GGA_I2C", 0x209100ba, FU1},
	{"MSGOUT-NMEA_ID_GGA_SPI", 0x209100be, FU1},
	{"MSGOUT-NMEA_ID_GGA_UART1", 0x209100bb, FU1},
	{"MSGOUT-NMEA_ID_GGA_UART2", 0x209100bc, FU1},
	{"MSGOUT-NMEA_ID_GGA_USB", 0x209100bd, FU1},
	{"MSGOUT-NMEA_ID_GLL_I2C", 0x209100c9, FU1},
	{"MSGOUT-NMEA_ID_GLL_SPI", 0x209100cd, FU1},
	{"MSGOUT-NMEA_ID_GLL_UART1", 0x209100ca, FU1},
	{"MSGOUT-NMEA_ID_GLL_UART2", 0x209100cb, FU1},
	{"MSGOUT-NMEA_ID_GLL_USB", 0x209100cc, FU1},
	{"MSGOUT-NMEA_ID_GNS_I2C", 0x209100b5, FU1},
	{"MSGOUT-NMEA_ID_GNS_SPI", 0x209100b9, FU1},
	{"MSGOUT-NMEA_ID_GNS_UART1", 0x209100b6, FU1},
	{"MSGOUT-NMEA_ID_GNS_UART2", 0x209100b7, FU1},
	{"MSGOUT-NMEA_ID_GNS_USB", 0x209100b8, FU1},
	{"MSGOUT-NMEA_ID_GRS_I2C", 0x209100ce, FU1},
	{"MSGOUT-NMEA_ID_GRS_SPI", 0x209100d2, FU1},
	{"MSGOUT-NMEA_ID_GRS_UART1", 0x209100cf, FU1},
	{"MSGOUT-NMEA_ID_GRS_UART2", 0x209100d0, FU1},
	{"MSGOUT-NMEA_ID_GRS_USB", 0x209100d1, FU1},
	{"MSGOUT-NMEA_ID_GSA_I2C", 0x209100bf, FU1},
	{"MSGOUT-NMEA_ID_GSA_SPI", 0x209100c3, FU1},
	{"MSGOUT-NMEA_ID_GSA_UART1", 0x209100c0, FU1},
	{"MSGOUT-NMEA_ID_GSA_UART2", 0x209100c1, FU1},
	{"MSGOUT-NMEA_ID_GSA_USB", 0x209100c2, FU1},
	{"MSGOUT-NMEA_ID_GST_I2C", 0x209100d3, FU1},
	{"MSGOUT-NMEA_ID_GST_SPI", 0x209100d7, FU1},
	{"MSGOUT-NMEA_ID_GST_UART1", 0x209100d4, FU1},
	{"MSGOUT-NMEA_ID_GST_UART2", 0x209100d5, FU1},
	{"MSGOUT-NMEA_ID_GST_USB", 0x209100d6, FU1},
	{"MSGOUT-NMEA_ID_GSV_I2C", 0x209100c4, FU1},
	{"MSGOUT-NMEA_ID_GSV_SPI", 0x209100c8, FU1},
	{"MSGOUT-NMEA_ID_GSV_UART1", 0x209100c5, FU1},
	{"MSGOUT-NMEA_ID_GSV_UART2", 0x209100c6, FU1},
	{"MSGOUT-NMEA_ID_GSV_USB", 0x209100c7, FU1},
	{"MSGOUT-NMEA_ID_RMC_I2C", 0x209100ab, FU1},
	{"MSGOUT-NMEA_ID_RMC_SPI", 0x209100af, FU1},
	{"MSGOUT-NMEA_ID_RMC_UART1", 0x209100ac, FU1},
	{"MSGOUT-NMEA_ID_RMC_UART2", 0x209100ad, FU1},
	{"MSGOUT-NMEA_ID_RMC_USB", 0x209100ae, FU1},
	{"MSGOUT-NMEA_ID_VLW_I2C", 0x209100e7, FU1},
	{"MSGOUT-NMEA_ID_VLW_SPI", 0x209100eb, FU1},
	{"MSGOUT-NMEA_ID_VLW_UART1", 0x209100e8, FU1},
	{"MSGOUT-NMEA_ID_VLW_UART2", 0x209100e9, FU1},
	{"MSGOUT-NMEA_ID_VLW_USB", 0x209100ea, FU1},
	{"MSGOUT-NMEA_ID_VTG_I2C", 0x209100b0, FU1},
	{"MSGOUT-NMEA_ID_VTG_SPI", 0x209100b4, FU1},
	{"MSGOUT-NMEA_ID_VTG_UART1", 0x209100b1, FU1},
	{"MSGOUT-NMEA_ID_VTG_UART2", 0x209100b2, FU1},
	{"MSGOUT-NMEA_ID_VTG_USB", 0x209100b3, FU1},
	{"MSGOUT-NMEA_ID_ZDA_I2C", 0x209100d8, FU1},
	{"MSGOUT-NMEA_ID_ZDA_SPI", 0x209100dc, FU1},
	{"MSGOUT-NMEA_ID_ZDA_UART1", 0x209100d9, FU1},
	{"MSGOUT-NMEA_ID_ZDA_UART2", 0x209100da, FU1},
	{"MSGOUT-NMEA_ID_ZDA_USB", 0x209100db, FU1},
	{"MSGOUT-PUBX_ID_POLYP_I2C", 0x209100ec, FU1},
	{"MSGOUT-PUBX_ID_POLYP_SPI", 0x209100f0, FU1},
	{"MSGOUT-PUBX_ID_POLYP_UART1", 0x209100ed, FU1},
	{"MSGOUT-PUBX_ID_POLYP_UART2", 0x209100ee, FU1},
	{"MSGOUT-PUBX_ID_POLYP_USB", 0x209100ef, FU1},
	{"MSGOUT-PUBX_ID_POLYS_I2C", 0x209100f1, FU1},
	{"MSGOUT-PUBX_ID_POLYS_SPI", 0x209100f5, FU1},
	{"MSGOUT-PUBX_ID_POLYS_UART1", 0x209100f2, FU1},
	{"MSGOUT-PUBX_ID_POLYS_UART2", 0x209100f3, FU1},
	{"MSGOUT-PUBX_ID_POLYS_USB", 0x209100f4, FU1},
	{"MSGOUT-PUBX_ID_POLYT_I2C", 0x209100f6, FU1},
	{"MSGOUT-PUBX_ID_POLYT_SPI", 0x209100fa, FU1},
	{"MSGOUT-PUBX_ID_POLYT_UART1", 0x209100f7, FU1},
	{"MSGOUT-PUBX_ID_POLYT_UART2", 0x209100f8, FU1},
	{"MSGOUT-PUBX_ID_POLYT_USB", 0x209100f9, FU1},
	{"MSGOUT-RTCM_3X_TYPE1005_I2C", 0x209102bd, FU1},
	{"MSGOUT-RTCM_3X_TYPE1005_SPI", 0x209102c1, FU1},
	{"MSGOUT-RTCM_3X_TYPE1005_UART1", 0x209102be, FU1},
	{"MSGOUT-RTCM_3X_TYPE1005_UART2", 0x209102bf, FU1},
	{"MSGOUT-RTCM_3X_TYPE1005_USB", 0x209102c0, FU1},
	{"MSGOUT-RTCM_3X_TYPE1074_I2C", 0x2091035e, FU1},
	{"MSGOUT-RTCM_3X_TYPE1074_SPI", 0x20910362, FU1},
	{"MSGOUT-RTCM_3X_TYPE1074_UART1", 0x2091035f, FU1},
	{"MSGOUT-RTCM_3X_TYPE1074_UART2", 0x20910360, FU1},
	{"MSGOUT-RTCM_3X_TYPE1074_USB", 0x20910361, FU1},
	{"MSGOUT-RTCM_3X_TYPE1077_I2C", 0x209102cc, FU1},
	{"MSGOUT-RTCM_3X_TYPE1077_SPI", 0x209102d0, FU1},
	{"MSGOUT-RTCM_3X_TYPE1077_UART1", 0x209102cd, FU1},
	{"MSGOUT-RTCM_3X_TYPE1077_UART2", 0x209102ce, FU1},
	{"MSGOUT-RTCM_3X_TYPE1077_USB", 0x209102cf, FU1},
	{"MSGOUT-RTCM_3X_TYPE1084_SPI", 0x20910367, FU1},
	{"MSGOUT-RTCM_3X_TYPE1084_UART1", 0x20910364, FU1},
	{"MSGOUT-RTCM_3X_TYPE1084_UART2", 0x20910365, FU1},
	{"MSGOUT-RTCM_3X_TYPE1084_USB", 0x20910366, FU1},
	{"MSGOUT-RTCM_3X_TYPE1087_I2C", 0x209102d1, FU1},
	{"MSGOUT-RTCM_3X_TYPE1087_SPI", 0x209102d5, FU1},
	{"MSGOUT-RTCM_3X_TYPE1087_UART1", 0x209102d2, FU1},
	{"MSGOUT-RTCM_3X_TYPE1087_UART2", 0x209102d3, FU1},
	{"MSGOUT-RTCM_3X_TYPE1087_USB", 0x209102d4, FU1},
	{"MSGOUT-RTCM_3X_TYPE1094_I2C", 0x20910368, FU1},
	{"MSGOUT-RTCM_3X_TYPE1094_SPI", 0x2091036c, FU1},
	{"MSGOUT-RTCM_3X_TYPE1094_UART1", 0x20910369, FU1},
	{"MSGOUT-RTCM_3X_TYPE1094_UART2", 0x2091036a, FU1},
	{"MSGOUT-RTCM_3X_TYPE1094_USB", 0x2091036b, FU1},
	{"MSGOUT-RTCM_3X_TYPE1097_I2C", 0x20910318, FU1},
	{"MSGOUT-RTCM_3X_TYPE1097_SPI", 0x2091031c, FU1},
	{"MSGOUT-RTCM_3X_TYPE1097_UART1", 0x20910319, FU1},
	{"MSGOUT-RTCM_3X_TYPE1097_UART2", 0x2091031a, FU1},
	{"MSGOUT-RTCM_3X_TYPE1097_USB", 0x2091031b, FU1},
	{"MSGOUT-RTCM_3X_TYPE1124_I2C", 0x2091036d, FU1},
	{"MSGOUT-RTCM_3X_TYPE1124_SPI", 0x20910371, FU1},
	{"MSGOUT-RTCM_3X_TYPE1124_UART1", 0x2091036e, FU1},
	{"MSGOUT-RTCM_3X_TYPE1124_UART2", 0x2091036f, FU1},
	{"MSGOUT-RTCM_3X_TYPE1124_USB", 0x20910370, FU1},
	{"MSGOUT-RTCM_3X_TYPE1127_I2C", 0x209102d6, FU1},
	{"MSGOUT-RTCM_3X_TYPE1127_SPI", 0x209102da, FU1},
	{"MSGOUT-RTCM_3X_TYPE1127_UART1", 0x209102d7, FU1},
	{"MSGOUT-RTCM_3X_TYPE1127_UART2", 0x209102d8, FU1},
	{"MSGOUT-RTCM_3X_TYPE1127_USB", 0x209102d9, FU1},
	{"MSGOUT-RTCM_3X_TYPE1230_I2C", 0x20910303, FU1},
	{"MSGOUT-RTCM_3X_TYPE1230_SPI", 0x20910307, FU1},
	{"MSGOUT-RTCM_3X_TYPE1230_UART1", 0x20910304, FU1},
	{"MSGOUT-RTCM_3X_TYPE1230_UART2", 0x20910305, FU1},
	{"MSGOUT-RTCM_3X_TYPE1230_USB", 0x20910306, FU1},
	{"MSGOUT-RTCM_3X_TYPE4072_0_I2C", 0x209102fe, FU1},
	{"MSGOUT-RTCM_3X_TYPE4072_0_SPI", 0x20910302, FU1},
	{"MSGOUT-RTCM_3X_TYPE4072_0_UART1", 0x209102ff, FU1},
	{"MSGOUT-RTCM_3X_TYPE4072_0_UART2", 0x20910300, FU1},
	{"MSGOUT-RTCM_3X_TYPE4072_0_USB", 0x20910301, FU1},
	{"MSGOUT-RTCM_3X_TYPE4072_1_I2C", 0x20910381, FU1},
	{"MSGOUT-RTCM_3X_TYPE4072_1_SPI", 0x20910385, FU1},
	{"MSGOUT-RTCM_3X_TYPE4072_1_UART1", 0x20910382, FU1},
	{"MSGOUT-RTCM_3X_TYPE4072_1_UART2", 0x20910383, FU1},
	{"MSGOUT-RTCM_3X_TYPE4072_1_USB", 0x20910384, FU1},
	{"MSGOUT-UBX_LOG_INFO_I2C", 0x20910259, FU1},
	{"MSGOUT-UBX_LOG_INFO_SPI", 0x2091025d, FU1},
	{"MSGOUT-UBX_LOG_INFO_UART1", 0x2091025a, FU1},
	{"MSGOUT-UBX_LOG_INFO_UART2", 0x2091025b, FU1},
	{"MSGOUT-UBX_LOG_INFO_USB", 0x2091025c, FU1},
	{"MSGOUT-UBX_MON_COMMS_I2C", 0x2091034f, FU1},
	{"MSGOUT-UBX_MON_COMMS_SPI", 0x20910353, FU1},
	{"MSGOUT-UBX_MON_COMMS_UART1", 0x20910350, FU1},
	{"MSGOUT-UBX_MON_COMMS_UART2", 0x20910351, FU1},
	{"MSGOUT-UBX_MON_COMMS_USB", 0x20910352, FU1},
	{"MSGOUT-UBX_MON_HW2_I2C", 0x209101b9, FU1},
	{"MSGOUT-UBX_MON_HW2_SPI", 0x209101bd, FU1},
	{"MSGOUT-UBX_MON_HW2_UART1", 0x209101ba, FU1},
	{"MSGOUT-UBX_MON_HW2_UART2", 0x209101bb, FU1},
	{"MSGOUT-UBX_MON_HW2_USB", 0x209101bc, FU1},
	{"MSGOUT-UBX_MON_HW3_I2C", 0x20910354, FU1},
	{"MSGOUT-UBX_MON_HW3_SPI", 0x20910358, FU1},
	{"MSGOUT-UBX_MON_HW3_UART1", 0x20910355, FU1},
	{"MSGOUT-UBX_MON_HW3_UART2", 0x20910356, FU1},
	{"MSGOUT-UBX_MON_HW3_USB", 0x20910357, FU1},
	{"MSGOUT-UBX_MON_HW_I2C", 0x209101b4, FU1},
	{"MSGOUT-UBX_MON_HW_SPI", 0x209101b8, FU1},
	{"MSGOUT-UBX_MON_HW_UART1", 0x209101b5, FU1},
	{"MSGOUT-UBX_MON_HW_UART2", 0x209101b6, FU1},
	{"MSGOUT-UBX_MON_HW_USB", 0x209101b7, FU1},
	{"MSGOUT-UBX_MON_IO_I2C", 0x209101a5, FU1},
	{"MSGOUT-UBX_MON_IO_SPI", 0x209101a9, FU1},
	{"MSGOUT-UBX_MON_IO_UART1", 0x209101a6, FU1},
	{"MSGOUT-UBX_MON_IO_UART2", 0x209101a7, FU1},
	{"MSGOUT-UBX_MON_IO_USB", 0x209101a8, FU1},
	{"MSGOUT-UBX_MON_MSGPP_I2C", 0x20910196, FU1},
	{"MSGOUT-UBX_MON_MSGPP_SPI", 0x2091019a, FU1},
	{"MSGOUT-UBX_MON_MSGPP_UART1", 0x20910197, FU1},
	{"MSGOUT-UBX_MON_MSGPP_UART2", 0x20910198, FU1},
	{"MSGOUT-UBX_MON_MSGPP_USB", 0x20910199, FU1},
	{"MSGOUT-UBX_MON_RF_I2C", 0x20910359, FU1},
	{"MSGOUT-UBX_MON_RF_SPI", 0x2091035d, FU1},
	{"MSGOUT-UBX_MON_RF_UART1", 0x2091035a, FU1},
	{"MSGOUT-UBX_MON_RF_UART2", 0x2091035b, FU1},
	{"MSGOUT-UBX_MON_RF_USB", 0x2091035c, FU1},
	{"MSGOUT-UBX_MON_RXBUF_I2C", 0x209101a0, FU1},
	{"MSGOUT-UBX_MON_RXBUF_SPI", 0x209101a4, FU1},
	{"MSGOUT-UBX_MON_RXBUF_UART1", 0x209101a1, FU1},
	{"MSGOUT-UBX_MON_RXBUF_UART2", 0x209101a2, FU1},
	{"MSGOUT-UBX_MON_RXBUF_USB", 0x209101a3, FU1},
	{"MSGOUT-UBX_MON_RXR_I2C", 0x20910187, FU1},
	{"MSGOUT-UBX_MON_RXR_SPI", 0x2091018b, FU1},
	{"MSGOUT-UBX_MON_RXR_UART1", 0x20910188, FU1},
	{"MSGOUT-UBX_MON_RXR_UART2", 0x20910189, FU1},
	{"MSGOUT-UBX_MON_RXR_USB", 0x2091018a, FU1},
	{"MSGOUT-UBX_MON_TXBUF_I2C", 0x2091019b, FU1},
	{"MSGOUT-UBX_MON_TXBUF_SPI", 0x2091019f, FU1},
	{"MSGOUT-UBX_MON_TXBUF_UART1", 0x2091019c, FU1},
	{"MSGOUT-UBX_MON_TXBUF_UART2", 0x2091019d, FU1},
	{"MSGOUT-UBX_MON_TXBUF_USB", 0x2091019e, FU1},
	{"MSGOUT-UBX_NAV_CLOCK_I2C", 0x20910065, FU1},
	{"MSGOUT-UBX_NAV_CLOCK_SPI", 0x20910069, FU1},
	{"MSGOUT-UBX_NAV_CLOCK_UART1", 0x20910066, FU1},
	{"MSGOUT-UBX_NAV_CLOCK_UART2", 0x20910067, FU1},
	{"MSGOUT-UBX_NAV_CLOCK_USB", 0x20910068, FU1},
	{"MSGOUT-UBX_NAV_DOP_I2C", 0x20910038, FU1},
	{"MSGOUT-UBX_NAV_DOP_SPI", 0x2091003c, FU1},
	{"MSGOUT-UBX_NAV_DOP_UART1", 0x20910039, FU1},
	{"MSGOUT-UBX_NAV_DOP_UART2", 0x2091003a, FU1},
	{"MSGOUT-UBX_NAV_DOP_USB", 0x2091003b, FU1},
	{"MSGOUT-UBX_NAV_EOE_I2C", 0x2091015f, FU1},
	{"MSGOUT-UBX_NAV_EOE_SPI", 0x20910163, FU1},
	{"MSGOUT-UBX_NAV_EOE_UART1", 0x20910160, FU1},
	{"MSGOUT-UBX_NAV_EOE_UART2", 0x20910161, FU1},
	{"MSGOUT-UBX_NAV_EOE_USB", 0x20910162, FU1},
	{"MSGOUT-UBX_NAV_GEOFENCE_I2C", 0x209100a1, FU1},
	{"MSGOUT-UBX_NAV_GEOFENCE_SPI", 0x209100a5, FU1},
	{"MSGOUT-UBX_NAV_GEOFENCE_UART1", 0x209100a2, FU1},
	{"MSGOUT-UBX_NAV_GEOFENCE_UART2", 0x209100a3, FU1},
	{"MSGOUT-UBX_NAV_GEOFENCE_USB", 0x209100a4, FU1},
	{"MSGOUT-UBX_NAV_HPPOSECEF_I2C", 0x2091002e, FU1},
	{"MSGOUT-UBX_NAV_HPPOSECEF_SPI", 0x20910032, FU1},
	{"MSGOUT-UBX_NAV_HPPOSECEF_UART1", 0x2091002f, FU1},
	{"MSGOUT-UBX_NAV_HPPOSECEF_UART2", 0x20910030, FU1},
	{"MSGOUT-UBX_NAV_HPPOSECEF_USB", 0x20910031, FU1},
	{"MSGOUT-UBX_NAV_HPPOSLLH_I2C", 0x20910033, FU1},
	{"MSGOUT-UBX_NAV_HPPOSLLH_SPI", 0x20910037, FU1},
	{"MSGOUT-UBX_NAV_HPPOSLLH_UART1", 0x20910034, FU1},
	{"MSGOUT-UBX_NAV_HPPOSLLH_UART2", 0x20910035, FU1},
	{"MSGOUT-UBX_NAV_HPPOSLLH_USB", 0x20910036, FU1},
	{"MSGOUT-UBX_NAV_ODO_I2C", 0x2091007e, FU1},
	{"MSGOUT-UBX_NAV_ODO_SPI", 0x20910082, FU1},
	{"MSGOUT-UBX_NAV_ODO_UART1", 0x2091007f, FU1},
	{"MSGOUT-UBX_NAV_ODO_UART2", 0x20910080, FU1},
	{"MSGOUT-UBX_NAV_ODO_USB", 0x20910081, FU1},
	{"MSGOUT-UBX_NAV_ORB_I2C", 0x20910010, FU1},
	{"MSGOUT-UBX_NAV_ORB_SPI", 0x20910014, FU1},
	{"MSGOUT-UBX_NAV_ORB_UART1", 0x20910011, FU1},
	{"MSGOUT-UBX_NAV_ORB_UART2", 0x20910012, FU1},
	{"MSGOUT-UBX_NAV_ORB_USB", 0x20910013, FU1},
	{"MSGOUT-UBX_NAV_POSECEF_I2C", 0x20910024, FU1},
	{"MSGOUT-UBX_NAV_POSECEF_SPI", 0x20910028, FU1},
	{"MSGOUT-UBX_NAV_POSECEF_UART1", 0x20910025, FU1},
	{"MSGOUT-UBX_NAV_POSECEF_UART2", 0x20910026, FU1},
	{"MSGOUT-UBX_NAV_POSECEF_USB", 0x20910027, FU1},
	{"MSGOUT-UBX_NAV_POSLLH_I2C", 0x20910029, FU1},
	{"MSGOUT-UBX_NAV_POSLLH_SPI", 0x2091002d, FU1},
	{"MSGOUT-UBX_NAV_POSLLH_UART1", 0x2091002a, FU1},
	{"MSGOUT-UBX_NAV_POSLLH_UART2", 0x2091002b, FU1},
	{"MSGOUT-UBX_NAV_POSLLH_USB", 0x2091002c, FU1},
	{"MSGOUT-UBX_NAV_PVT_I2C", 0x20910006, FU1},
	{"MSGOUT-UBX_NAV_PVT_SPI", 0x2091000a, FU1},
	{"MSGOUT-UBX_NAV_PVT_UART1", 0x20910007, FU1},
	{"MSGOUT-UBX_NAV_PVT_UART2", 0x20910008, FU1},
	{"MSGOUT-UBX_NAV_PVT_USB", 0x20910009, FU1},
	{"MSGOUT-UBX_NAV_RELPOSNED_I2C", 0x2091008d, FU1},
	{"MSGOUT-UBX_NAV_RELPOSNED_SPI", 0x20910091, FU1},
	{"MSGOUT-UBX_NAV_RELPOSNED_UART1", 0x2091008e, FU1},
	{"MSGOUT-UBX_NAV_RELPOSNED_UART2", 0x2091008f, FU1},
	{"MSGOUT-UBX_NAV_RELPOSNED_USB", 0x20910090, FU1},
	{"MSGOUT-UBX_NAV_SAT_I2C", 0x20910015, FU1},
	{"MSGOUT-UBX_NAV_SAT_SPI", 0x20910019, FU1},
	{"MSGOUT-UBX_NAV_SAT_UART1", 0x20910016, FU1},
	{"MSGOUT-UBX_NAV_SAT_UART2", 0x20910017, FU1},
	{"MSGOUT-UBX_NAV_SAT_USB", 0x20910018, FU1},
	{"MSGOUT-UBX_NAV_SBAS_I2C", 0x2091006a, FU1},
	{"MSGOUT-UBX_NAV_SBAS_SPI", 0x2091006e, FU1},
	{"MSGOUT-UBX_NAV_SBAS_UART1", 0x2091006b, FU1},
	{"MSGOUT-UBX_NAV_SBAS_UART2", 0x2091006c, FU1},
	{"MSGOUT-UBX_NAV_SBAS_USB", 0x2091006d, FU1},
	{"MSGOUT-UBX_NAV_SIG_I2C", 0x20910345, FU1},
	{"MSGOUT-UBX_NAV_SIG_SPI", 0x20910349, FU1},
	{"MSGOUT-UBX_NAV_SIG_UART1", 0x20910346, FU1},
	{"MSGOUT-UBX_NAV_SIG_UART2", 0x20910347, FU1},
	{"MSGOUT-UBX_NAV_SIG_USB", 0x20910348, FU1},
	{"MSGOUT-UBX_NAV_STATUS_I2C", 0x2091001a, FU1},
	{"MSGOUT-UBX_NAV_STATUS_SPI", 0x2091001e, FU1},
	{"MSGOUT-UBX_NAV_STATUS_UART1", 0x2091001b, FU1},
	{"MSGOUT-UBX_NAV_STATUS_UART2", 0x2091001c, FU1},
	{"MSGOUT-UBX_NAV_STATUS_USB", 0x2091001d, FU1},
	{"MSGOUT-UBX_NAV_SVIN_I2C", 0x20910088, FU1},
	{"MSGOUT-UBX_NAV_SVIN_SPI", 0x2091008c, FU1},
	{"MSGOUT-UBX_NAV_SVIN_UART1", 0x20910089, FU1},
	{"MSGOUT-UBX_NAV_SVIN_UART2", 0x2091008a, FU1},
	{"MSGOUT-UBX_NAV_SVIN_USB", 0x2091008b, FU1},
	{"MSGOUT-UBX_NAV_TIMEBDS_I2C", 0x20910051, FU1},
	{"MSGOUT-UBX_NAV_TIMEBDS_SPI", 0x20910055, FU1},
	{"MSGOUT-UBX_NAV_TIMEBDS_UART1", 0x20910052, FU1},
	{"MSGOUT-UBX_NAV_TIMEBDS_UART2", 0x20910053, FU1},
	{"MSGOUT-UBX_NAV_TIMEBDS_USB", 0x20910054, FU1},
	{"MSGOUT-UBX_NAV_TIMEGAL_I2C", 0x20910056, FU1},
	{"MSGOUT-UBX_NAV_TIMEGAL_SPI", 0x2091005a, FU1},
	{"MSGOUT-UBX_NAV_TIMEGAL_UART1", 0x20910057, FU1},
	{"MSGOUT-UBX_NAV_TIMEGAL_UART2", 0x20910058, FU1},
	{"MSGOUT-UBX_NAV_TIMEGAL_USB", 0x20910059, FU1},
	{"MSGOUT-UBX_NAV_TIMEGLO_I2C", 0x2091004c, FU1},
	{"MSGOUT-UBX_NAV_TIMEGLO_SPI", 0x20910050, FU1},
	{"MSGOUT-UBX_NAV_TIMEGLO_UART1", 0x2091004d, FU1},
	{"MSGOUT-UBX_NAV_TIMEGLO_UART2", 0x2091004e, FU1},
	{"MSGOUT-UBX_NAV_TIMEGLO_USB", 0x2091004f, FU1},
	{"MSGOUT-UBX_NAV_TIMEGPS_I2C", 0x20910047, FU1},
	{"MSGOUT-UBX_NAV_TIMEGPS_SPI", 0x2091004b, FU1},
	{"MSGOUT-UBX_NAV_TIMEGPS_UART1", 0x20910048, FU1},
	{"MSGOUT-UBX_NAV_TIMEGPS_UART2", 0x20910049, FU1},
	{"MSGOUT-UBX_NAV_TIMEGPS_USB", 0x2091004a, FU1},
	{"MSGOUT-UBX_NAV_TIMELS_I2C", 0x20910060, FU1},
	{"MSGOUT-UBX_NAV_TIMELS_SPI", 0x20910064, FU1},
	{"MSGOUT-UBX_NAV_TIMELS_UART1", 0x20910061, FU1},
	{"MSGOUT-UBX_NAV_TIMELS_UART2", 0x20910062, FU1},
	{"MSGOUT-UBX_NAV_TIMELS_USB", 0x20910063, FU1},
	{"MSGOUT-UBX_NAV_TIMEUTC_I2C", 0x2091005b, FU1},
	{"MSGOUT-UBX_NAV_TIMEUTC_SPI", 0x2091005f, FU1},
	{"MSGOUT-UBX_NAV_TIMEUTC_UART1", 0x2091005c, FU1},
	{"MSGOUT-UBX_NAV_TIMEUTC_UART2", 0x2091005d, FU1},
	{"MSGOUT-UBX_NAV_TIMEUTC_USB", 0x2091005e, FU1},
	{"MSGOUT-UBX_NAV_VELECEF_I2C", 0x2091003d, FU1},
	{"MSGOUT-UBX_NAV_VELECEF_SPI", 0x20910041, FU1},
	{"MSGOUT-UBX_NAV_VELECEF_UART1", 0x2091003e, FU1},
	{"MSGOUT-UBX_NAV_VELECEF_UART2", 0x2091003f, FU1},
	{"MSGOUT-UBX_NAV_VELECEF_USB", 0x20910040, FU1},
	{"MSGOUT-UBX_NAV_VELNED_I2C", 0x20910042, FU1},
	{"MSGOUT-UBX_NAV_VELNED_SPI", 0x20910046, FU1},
	{"MSGOUT-UBX_NAV_VELNED_UART1", 0x20910043, FU1},
	{"MSGOUT-UBX_NAV_VELNED_UART2", 0x20910044, FU1},
	{"MSGOUT-UBX_NAV_VELNED_USB", 0x20910045, FU1},
	{"MSGOUT-UBX_RXM_MEASX_I2C", 0x20910204, FU1},
	{"MSGOUT-UBX_RXM_MEASX_SPI", 0x20910208, FU1},
	{"MSGOUT-UBX_RXM_MEASX_UART1", 0x20910205, FU1},
	{"MSGOUT-UBX_RXM_MEASX_UART2", 0x20910206, FU1},
	{"MSGOUT-UBX_RXM_MEASX_USB", 0x20910207, FU1},
	{"MSGOUT-UBX_RXM_RAWX_I2C", 0x209102a4, FU1},
	{"MSGOUT-UBX_RXM_RAWX_SPI", 0x209102a8, FU1},
	{"MSGOUT-UBX_RXM_RAWX_UART1", 0x209102a5, FU1},
	{"MSGOUT-UBX_RXM_RAWX_UART2", 0x209102a6, FU1},
	{"MSGOUT-UBX_RXM_RAWX_USB", 0x209102a7, FU1},
	{"MSGOUT-UBX_RXM_RLM_I2C", 0x2091025e, FU1},
	{"MSGOUT-UBX_RXM_RLM_SPI", 0x20910262, FU1},
	{"MSGOUT-UBX_RXM_RLM_UART1", 0x2091025f, FU1},
	{"MSGOUT-UBX_RXM_RLM_UART2", 0x20910260, FU1},
	{"MSGOUT-UBX_RXM_RLM_USB", 0x20910261, FU1},
	{"MSGOUT-UBX_RXM_RTCM_I2C", 0x20910268, FU1},
	{"MSGOUT-UBX_RXM_RTCM_SPI", 0x2091026c, FU1},
	{"MSGOUT-UBX_RXM_RTCM_UART1", 0x20910269, FU1},
	{"MSGOUT-UBX_RXM_RTCM_UART2", 0x2091026a, FU1},
	{"MSGOUT-UBX_RXM_RTCM_USB", 0x2091026b, FU1},
	{"MSGOUT-UBX_RXM_SFRBX_I2C", 0x20910231, FU1},
	{"MSGOUT-UBX_RXM_SFRBX_SPI", 0x20910235, FU1},
	{"MSGOUT-UBX_RXM_SFRBX_UART1", 0x20910232, FU1},
	{"MSGOUT-UBX_RXM_SFRBX_UART2", 0x20910233, FU1},
	{"MSGOUT-UBX_RXM_SFRBX_USB", 0x20910234, FU1},
	{"MSGOUT-UBX_TIM_SVIN_I2C", 0x20910097, FU1},
	{"MSGOUT-UBX_TIM_SVIN_SPI", 0x2091009b, FU1},
	{"MSGOUT-UBX_TIM_SVIN_UART1", 0x20910098, FU1},
	{"MSGOUT-UBX_TIM_SVIN_UART2", 0x20910099, FU1},
	{"MSGOUT-UBX_TIM_SVIN_USB", 0x2091009a, FU1},
	{"MSGOUT-UBX_TIM_TM2_I2C", 0x20910178, FU1},
	{"MSGOUT-UBX_TIM_TM2_SPI", 0x2091017c, FU1},
	{"MSGOUT-UBX_TIM_TM2_UART1", 0x20910179, FU1},
	{"MSGOUT-UBX_TIM_TM2_UART2", 0x2091017a, FU1},
	{"MSGOUT-UBX_TIM_TM2_USB", 0x2091017b, FU1},
	{"MSGOUT-UBX_TIM_TP_I2C", 0x2091017d, FU1},
	{"MSGOUT-UBX_TIM_TP_SPI", 0x20910181, FU1},
	{"MSGOUT-UBX_TIM_TP_UART1", 0x2091017e, FU1},
	{"MSGOUT-UBX_TIM_TP_UART2", 0x2091017f, FU1},
	{"MSGOUT-UBX_TIM_TP_USB", 0x20910180, FU1},
	{"MSGOUT-UBX_TIM_VRFY_I2C", 0x20910092, FU1},
	{"MSGOUT-UBX_TIM_VRFY_SPI", 0x20910096, FU1},
	{"MSGOUT-UBX_TIM_VRFY_UART1", 0x20910093, FU1},
	{"MSGOUT-UBX_TIM_VRFY_UART2", 0x20910094, FU1},
	{"MSGOUT-UBX_TIM_VRFY_USB", 0x20910095, FU1},
	{"NAVHPG-DGNSSMODE", 0x20140011, FU1},
	{"NAVSPG-ACKAIDING", 0x10110025, FU1},
	{"NAVSPG-CONSTR_ALT", 0x401100c1, FI4},
	{"NAVSPG-CONSTR_ALTVAR", 0x401100c2, FU4},
	{"NAVSPG-CONSTR_DGNSSTO", 0x201100c4, FU1},
	{"NAVSPG-DYNMODEL", 0x20110021, FU1},
	{"NAVSPG-FIXMODE", 0x20110011, FU1},
	{"NAVSPG-INFIL_CNOTHRS", 0x201100ab, FU1},
	{"NAVSPG-INFIL_MAXSVS", 0x201100a2, FU1},
	{"NAVSPG-INFIL_MINCNO", 0x201100a3, FU1},
	{"NAVSPG-INFIL_MINELEV", 0x201100a4, FI1},
	{"NAVSPG-INFIL_MINSVS", 0x201100a1, FU1},
	{"NAVSPG-INFIL_NCNOTHRS", 0x201100aa, FU1},
	{"NAVSPG-INIFIX3D", 0x10110013, FU1},
	{"NAVSPG-OUTFIL_FACC", 0x301100b5, FU2},
	{"NAVSPG-OUTFIL_PACC", 0x301100b3, FU2},
	{"NAVSPG-OUTFIL_PDOP", 0x301100b1, FU2},
	{"NAVSPG-OUTFIL_TACC", 0x301100b4, FU2},
	{"NAVSPG-OUTFIL_TDOP", 0x301100b2, FU2},
	{"NAVSPG-USE_PPP", 0x10110019, FU1},
	{"NAVSPG-USE_USRDAT", 0x10110061, FU1},
	{"NAVSPG-USRDAT_DX", 0x40110064, FR4},
	{"NAVSPG-USRDAT_DY", 0x40110065, FR4},
	{"NAVSPG-USRDAT_DZ", 0x40110066, FR4},
	{"NAVSPG-USRDAT_FLAT", 0x50110063, FR8},
	{"NAVSPG-USRDAT_MAJA", 0x50110062, FR8},
	{"NAVSPG-USRDAT_ROTX", 0x40110067, FR4},
	{"NAVSPG-USRDAT_ROTY", 0x40110068, FR4},
	{"NAVSPG-USRDAT_ROTZ", 0x40110069, FR4},
	{"NAVSPG-USRDAT_SCALE", 0x4011006a, FR4},
	{"NAVSPG-UTCSTANDARD", 0x2011001c, FU1},
	{"NAVSPG-WKNROLLOVER", 0x30110017, FU2},
	{"NMEA-BDSTALKERID", 0x30930033, FU2},
	{"NMEA-COMPAT", 0x10930003, FU1},
	{"NMEA-CONSIDER", 0x10930004, FU1},
	{"NMEA-FILT_BDS", 0x10930017, FU1},
	{"NMEA-FILT_GLO", 0x10930016, FU1},
	{"NMEA-FILT_GPS", 0x10930011, FU1},
	{"NMEA-FILT_QZSS", 0x10930015, FU1},
	{"NMEA-FILT_SBAS", 0x10930012, FU1},
	{"NMEA-GSVTALKERID", 0x20930032, FU1},
	{"NMEA-HIGHPREC", 0x10930006, FU1},
	{"NMEA-LIMIT82", 0x10930005, FU1},
	{"NMEA-MAINTALKERID", 0x20930031, FU1},
	{"NMEA-MAXSVS", 0x20930002, FU1},
	{"NMEA-OUT_FROZENCOG", 0x10930026, FU1},
	{"NMEA-OUT_INVDATE", 0x10930024, FU1},
	{"NMEA-OUT_INVFIX", 0x10930021, FU1},
	{"NMEA-OUT_INVTIME", 0x10930023, FU1},
	{"NMEA-OUT_MSKFIX", 0x10930022, FU1},
	{"NMEA-OUT_ONLYGPS", 0x10930025, FU1},
	{"NMEA-PROTVER", 0x20930001, FU1},
	{"NMEA-SVNUMBERING", 0x20930007, FU1},
	{"ODO-COGLPGAIN", 0x20220032, FU1},
	{"ODO-COGMAXPOSACC", 0x20220022, FU1},
	{"ODO-COGMAXSPEED", 0x20220021, FU1},
	{"ODO-OUTLPCOG", 0x10220004, FU1},
	{"ODO-OUTLPVEL", 0x10220003, FU1},
	{"ODO-PROFILE", 0x20220005, FU1},
	{"ODO-USE_COG", 0x10220002, FU1},
	{"ODO-USE_ODO", 0x10220001, FU1},
	{"ODO-VELLPGAIN", 0x20220031, FU1},
	{"RATE-MEAS", 0x30210001, FU2},
	{"RATE-NAV", 0x30210002, FU2},
	{"RATE-TIMEREF", 0x20210003, FU1},
	{"RINV-BINARY", 0x10c70002, FU1},
	{"RINV-CHUNK0", 0x50c70004, FU8},
	{"RINV-CHUNK1", 0x50c70005, FU8},
	{"RINV-CHUNK2", 0x50c70006, FU8},
	{"RINV-CHUNK3", 0x50c70007, FU8},
	{"RINV-DATA_SIZE", 0x20c70003, FU1},
	{"RINV-DUMP", 0x10c70001, FU1},
	{"SBAS-PRNSCANMASK", 0x50360006, FU8},
	{"SBAS-USE_DIFFCORR", 0x10360004, FU1},
	{"SBAS-USE_INTEGRITY", 0x10360005, FU1},
	{"SBAS-USE_RANGING", 0x10360003, FU1},
	{"SBAS-USE_TESTMODE", 0x10360002, FU1},
	{"SIGNAL-BDS_B1_ENA", 0x1031000d, FU1},
	{"SIGNAL-BDS_B2_ENA", 0x1031000e, FU1},
	{"SIGNAL-BDS_ENA", 0x10310022, FU1},
	{"SIGNAL-GAL_E1_ENA", 0x10310007, FU1},
	{"SIGNAL-GAL_E5B_ENA", 0x1031000a, FU1},
	{"SIGNAL-GAL_ENA", 0x10310021, FU1},
	{"SIGNAL-GLO_ENA", 0x10310025, FU1},
	{"SIGNAL-GLO_L1_ENA", 0x10310018, FU1},
	{"SIGNAL-GLO_L2_ENA", 0x1031001a, FU1},
	{"SIGNAL-GPS_ENA", 0x1031001f, FU1},
	{"SIGNAL-GPS_L1CA_ENA", 0x10310001, FU1},
	{"SIGNAL-GPS_L2C_ENA", 0x10310003, FU1},
	{"SIGNAL-QZSS_ENA", 0x10310024, FU1},
	{"SIGNAL-QZSS_L1CA_ENA", 0x10310012, FU1},
	{"SIGNAL-QZSS_L1S_ENA", 0x10310014, FU1},
	{"SIGNAL-QZSS_L2C_ENA", 0x10310015, FU1},
	{"SIGNAL-SBAS_ENA", 0x10310020, FU1},
	{"SIGNAL-SBAS_L1CA_ENA", 0x10310005, FU1},
	{"SPI-CPHASE", 0x10640003, FU1},
	{"SPI-CPOLARITY", 0x10640002, FU1},
	{"SPI-ENABLED", 0x10640006, FU1},
	{"SPI-EXTENDEDTIMEOUT", 0x10640005, FU1},
	{"SPI-MAXFF", 0x20640001, FU1},
	{"SPIINPROT-NMEA", 0x10790002, FU1},
	{"SPIINPROT-RTCM2X", 0x10790003, FU1},
	{"SPIINPROT-RTCM3X", 0x10790004, FU1},
	{"SPIINPROT-UBX", 0x10790001, FU1},
	{"SPIOUTPROT-NMEA", 0x107a0002, FU1},
	{"SPIOUTPROT-RTCM3X", 0x107a0004, FU1},
	{"SPIOUTPROT-UBX", 0x107a0001, FU1},
	{"TMODE-ECEF_X", 0x40030003, FI4},
	{"TMODE-ECEF_X_HP", 0x20030006, FI1},
	{"TMODE-ECEF_Y", 0x40030004, FI4},
	{"TMODE-ECEF_Y_HP", 0x20030007, FI1},
	{"TMODE-ECEF_Z", 0x40030005, FI4},
	{"TMODE-ECEF_Z_HP", 0x20030008, FI1},
	{"TMODE-FIXED_POS_ACC", 0x4003000f, FU4},
	{"TMODE-HEIGHT", 0x4003000b, FI4},
	{"TMODE-HEIGHT_HP", 0x2003000e, FI1},
	{"TMODE-LAT", 0x40030009, FI4},
	{"TMODE-LAT_HP", 0x2003000c, FI1},
	{"TMODE-LON", 0x4003000a, FI4},
	{"TMODE-LON_HP", 0x2003000d, FI1},
	{"TMODE-MODE", 0x20030001, FU1},
	{"TMODE-POS_TYPE", 0x20030002, FU1},
	{"TMODE-SVIN_ACC_LIMIT", 0x40030011, FU4},
	{"TMODE-SVIN_MIN_DUR", 0x40030010, FU4},
	{"TP-ALIGN_TO_TOW_TP1", 0x1005000a, FU1},
	{"TP-ALIGN_TO_TOW_TP2", 0x10050015, FU1},
	{"TP-ANT_CABLEDELAY", 0x30050001, FI2},
	{"TP-DUTY_LOCK_TP1", 0x5005002b, FR8},
	{"TP-DUTY_LOCK_TP2", 0x5005002d, FR8},
	{"TP-DUTY_TP1", 0x5005002a, FR8},
	{"TP-DUTY_TP2", 0x5005002c, FR8},
	{"TP-FREQ_LOCK_TP1", 0x40050025, FU4},
	{"TP-FREQ_LOCK_TP2", 0x40050027, FU4},
	{"TP-FREQ_TP1", 0x40050024, FU4},
	{"TP-FREQ_TP2", 0x40050026, FU4},
	{"TP-LEN_LOCK_TP1", 0x40050005, FU4},
	{"TP-LEN_LOCK_TP2", 0x40050010, FU4},
	{"TP-LEN_TP1", 0x40050004, FU4},
	{"TP-LEN_TP2", 0x4005000f, FU4},
	{"TP-PERIOD_LOCK_TP1", 0x40050003, FU4},
	{"TP-PERIOD_LOCK_TP2", 0x4005000e, FU4},
	{"TP-PERIOD_TP1", 0x40050002, FU4},
	{"TP-PERIOD_TP2", 0x4005000d, FU4},
	{"TP-POL_TP1", 0x1005000b, FU1},
	{"TP-POL_TP2", 0x10050016, FU1},
	{"TP-PULSE_DEF", 0x20050023, FU1},
	{"TP-PULSE_LENGTH_DEF", 0x20050030, FU1},
	{"TP-SYNC_GNSS_TP1", 0x10050008, FU1},
	{"TP-SYNC_GNSS_TP2", 0x10050013, FU1},
	{"TP-TIMEGRID_TP1", 0x2005000c, FU1},
	{"TP-TIMEGRID_TP2", 0x20050017, FU1},
	{"TP-TP1_ENA", 0x10050007, FU1},
	{"TP-TP2_ENA", 0x10050012, FU1},
	{"TP-USER_DELAY_TP1", 0x40050006, FI4},
	{"TP-USER_DELAY_TP2", 0x40050011, FI4},
	{"TP-USE_LOCKED_TP1", 0x10050009, FU1},
	{"TP-USE_LOCKED_TP2", 0x10050014, FU1},
	{"UART1-BAUDRATE", 0x40520001, FU4},
	{"UART1-DATABITS", 0x20520003, FU1},
	{"UART1-ENABLED", 0x10520005, FU1},
	{"UART1-PARITY", 0x20520004, FU1},
	{"UART1-STOPBITS", 0x20520002, FU1},
	{"UART1INPROT-NMEA", 0x10730002, FU1},
	{"UART1INPROT-RTCM2X", 0x10730003, FU1},
	{"UART1INPROT-RTCM3X", 0x10730004, FU1},
	{"UART1INPROT-UBX", 0x10730001, FU1},
	{"UART1OUTPROT-NMEA", 0x10740002, FU1},
	{"UART1OUTPROT-RTCM3X", 0x10740004, FU1},
	{"UART1OUTPROT-UBX", 0x10740001, FU1},
	{"UART2-BAUDRATE", 0x40530001, FU4},
	{"UART2-DATABITS", 0x20530003, FU1},
	{"UART2-ENABLED", 0x10530005, FU1},
	{"UART2-PARITY", 0x20530004, FU1},
	{"UART2-REMAP", 0x10530006, FU1},
	{"UART2-STOPBITS", 0x20530002, FU1},
	{"UART2INPROT-NMEA", 0x10750002, FU1},
	{"UART2INPROT-RTCM2X", 0x10750003, FU1},
	{"UART2INPROT-RTCM3X", 0x10750004, FU1},
	{"UART2INPROT-UBX", 0x10750001, FU1},
	{"UART2OUTPROT-NMEA", 0x10760002, FU1},
	{"UART2OUTPROT-RTCM3X", 0x10760004, FU1},
	{"UART2OUTPROT-UBX", 0x10760001, FU1},
	{"USB-ENABLED", 0x10650001, FU1},
	{"USB-POWER", 0x3065000c, FU2},
	{"USB-PRODUCT_ID", 0x3065000b, FU2},
	{"USB-PRODUCT_STR0", 0x50650011, FU8},
	{"USB-PRODUCT_STR1", 0x50650012, FU8},
	{"USB-PRODUCT_STR2", 0x50650013, FU8},
	{"USB-PRODUCT_STR3", 0x50650014, FU8},
	{"USB-SELFPOW", 0x10650002, FU1},
	{"USB-SERIAL_NO_STR0", 0x50650015, FU8},
	{"USB-SERIAL_NO_STR1", 0x50650016, FU8},
	{"USB-SERIAL_NO_STR2", 0x50650017, FU8},
	{"USB-SERIAL_NO_STR3", 0x50650018, FU8},
	{"USB-VENDOR_ID", 0x3065000a, FU2},
	{"USB-VENDOR_STR0", 0x5065000d, FU8},
	{"USB-VENDOR_STR1", 0x5065000e, FU8},
	{"USB-VENDOR_STR2", 0x5065000f, FU8},
	{"USB-VENDOR_STR3", 0x50650010, FU8},
	{"USBINPROT-NMEA", 0x10770002, FU1},
	{"USBINPROT-RTCM2X", 0x10770003, FU1},
	{"USBINPROT-RTCM3X", 0x10770004, FU1},
	{"USBINPROT-UBX", 0x10770001, FU1},
	{"USBOUTPROT-NMEA", 0x10780002, FU1},
	{"USBOUTPROT-RTCM3X", 0x10780004, FU1},
	{"USBOUTPROT-UBX", 0x10780001, FU1},
}

// lookupValKey resolves a bare key name (without the leading "CFG-") to
// its catalogue entry, or reports ok=false if the name is unknown.
func lookupValKey(name string) (valKey, bool) {
	i := sort.Search(len(valKeys), func(i int) bool { return valKeys[i].Name >= name })
	if i < len(valKeys) && valKeys[i].Name == name {
		return valKeys[i], true
	}
	return valKey{}, false
}
