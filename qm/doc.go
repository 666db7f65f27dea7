/*
 * doc.go, part of govqe.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package qm implements the communication with the programs that build qubit
//Hamiltonians and evaluate quantum circuits, in such a way that the calculation
//settings are as separated as possible from the choice of program.
//
//govqe doesn't simulate circuits itself. ExtHandle runs any program that
//speaks the chemjson protocol (for instance, a short script around a Python
//quantum chemistry library) and other implementations of Builder and
//Evaluator can be plugged in.
package qm
